package harness

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AssertSuccess checks that the run exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure checks that the run exited with any non-zero code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode,
		"versioninfo succeeded unexpectedly\nstdout: %s", result.Stdout)
}

// AssertExitCode checks the exit code, dumping both streams on mismatch
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"unexpected exit code\nstdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

// AssertStdoutContains checks the command output (environment or stats)
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout: %s", result.Stdout)
}

// AssertStdoutNotContains is the negation of AssertStdoutContains
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout: %s", result.Stdout)
}

// AssertStderrContains checks the log sink output (warnings, verbose lines, error block)
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr: %s", result.Stderr)
}

// AssertStdoutEmpty checks that nothing but whitespace was printed
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "stdout: %s", result.Stdout)
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"stdout is not JSON: %s", result.Stdout)
}

// AssertJSONContains decodes stdout as an object and checks one key
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var object map[string]any
	AssertValidJSON(tb, result, &object)
	assert.Equal(tb, expected, object[key], "key %q", key)
}
