package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPkgVersion is used when the package descriptor has no version
	DefaultPkgVersion = "0.0.1"
	// UnknownStage is used when neither STAGE nor the provider declare a stage
	UnknownStage = "unknown"
)

// RepoStatus holds the working tree status as reported by git
type RepoStatus struct {
	Ahead      int    // Commits ahead of the upstream branch
	Behind     int    // Commits behind the upstream branch
	Branch     string // Current branch, empty when HEAD is detached
	Conflicted int    // Unmerged paths (not part of the delta)
	Created    int    // Paths added to the index (not part of the delta)
	Deleted    int    // Deleted paths (index or worktree)
	Modified   int    // Modified paths (index or worktree)
	NotAdded   int    // Untracked paths
	Renamed    int    // Renamed paths
}

// Delta returns the number of dirty paths counted into the version string
func (s RepoStatus) Delta() int {
	return s.NotAdded + s.Deleted + s.Modified + s.Renamed
}

// Package holds the fields read from the package descriptor
type Package struct {
	Name    string
	Version string
}

// Stats is the statistics record templates are rendered against.
// It is built once per invocation and never modified afterwards.
type Stats struct {
	Ahead      int    `json:"ahead" yaml:"ahead"`
	Behind     int    `json:"behind" yaml:"behind"`
	Branch     string `json:"branch" yaml:"branch"`
	Delta      int    `json:"delta" yaml:"delta"`
	Hash       string `json:"hash" yaml:"hash"`
	Major      string `json:"major" yaml:"major"`
	Minor      string `json:"minor" yaml:"minor"`
	Patch      string `json:"patch" yaml:"patch"`
	PkgVersion string `json:"pkgVersion" yaml:"pkgVersion"`
	Stage      string `json:"stage" yaml:"stage"`
	TS         int64  `json:"ts" yaml:"ts"`
	Timestamp  int64  `json:"timestamp" yaml:"timestamp"`
	Version    string `json:"version" yaml:"version"`
}

// StatsInput carries everything needed to assemble a Stats record
type StatsInput struct {
	CapturedAt    time.Time
	CommitCount   string
	EnvStage      string
	Hash          string
	Package       Package
	ProviderStage string
	Status        RepoStatus
}

// NewStats assembles the statistics record from raw repository facts
func NewStats(in StatsInput) Stats {
	pkgVersion := in.Package.Version
	if pkgVersion == "" {
		pkgVersion = DefaultPkgVersion
	}
	major, minor := SplitVersion(pkgVersion)
	patch := PatchFromCount(in.CommitCount)

	ms := in.CapturedAt.UnixMilli()

	return Stats{
		Ahead:      in.Status.Ahead,
		Behind:     in.Status.Behind,
		Branch:     in.Status.Branch,
		Delta:      in.Status.Delta(),
		Hash:       strings.TrimSpace(in.Hash),
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		PkgVersion: pkgVersion,
		Stage:      ResolveStage(in.EnvStage, in.ProviderStage),
		TS:         ms,
		Timestamp:  ms,
		Version:    major + "." + minor + "." + patch,
	}
}

// PatchFromCount strips every non-digit from the raw commit count output.
// Output without digits yields an empty patch, which is kept as is.
func PatchFromCount(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitVersion returns the first two dot-separated components of version,
// each defaulted to "0" when missing or empty
func SplitVersion(version string) (major, minor string) {
	parts := strings.Split(version, ".")
	major, minor = "0", "0"
	if len(parts) > 0 && parts[0] != "" {
		major = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		minor = parts[1]
	}
	return major, minor
}

// ResolveStage applies the stage precedence: environment, provider, unknown
func ResolveStage(envStage, providerStage string) string {
	if envStage != "" {
		return envStage
	}
	if providerStage != "" {
		return providerStage
	}
	return UnknownStage
}

// Lookup returns the string form of a field by its template name
func (s Stats) Lookup(name string) (string, bool) {
	switch name {
	case "ahead":
		return strconv.Itoa(s.Ahead), true
	case "behind":
		return strconv.Itoa(s.Behind), true
	case "branch":
		return s.Branch, true
	case "delta":
		return strconv.Itoa(s.Delta), true
	case "hash":
		return s.Hash, true
	case "major":
		return s.Major, true
	case "minor":
		return s.Minor, true
	case "patch":
		return s.Patch, true
	case "pkgVersion":
		return s.PkgVersion, true
	case "stage":
		return s.Stage, true
	case "ts":
		return strconv.FormatInt(s.TS, 10), true
	case "timestamp":
		return strconv.FormatInt(s.Timestamp, 10), true
	case "version":
		return s.Version, true
	}
	return "", false
}

// Vars exposes the record to expressions, keeping numeric fields numeric
func (s Stats) Vars() map[string]any {
	return map[string]any{
		"ahead":      s.Ahead,
		"behind":     s.Behind,
		"branch":     s.Branch,
		"delta":      s.Delta,
		"hash":       s.Hash,
		"major":      s.Major,
		"minor":      s.Minor,
		"patch":      s.Patch,
		"pkgVersion": s.PkgVersion,
		"stage":      s.Stage,
		"ts":         s.TS,
		"timestamp":  s.Timestamp,
		"version":    s.Version,
	}
}

// FieldNames lists the template fields in a stable order
func FieldNames() []string {
	return []string{
		"patch", "hash", "branch", "ahead", "behind", "delta",
		"pkgVersion", "major", "minor", "version", "stage", "ts", "timestamp",
	}
}
