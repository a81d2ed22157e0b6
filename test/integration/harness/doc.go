// Package harness provides utilities for integration testing the versioninfo CLI.
// It handles binary compilation, environment isolation, repository fixtures
// and command execution.
//
// Environment variables managed:
//   - VERSIONINFO_HOME: Isolated per test (temp directory)
//   - VERSIONINFO_DEBUG: Disabled to reduce noise
//   - STAGE: Removed so the provider stage is deterministic
package harness
