package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchFromCount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"42\n", "42"},
		{"  7  \n", "7"},
		{"1,024", "1024"},
		{"", ""},
		{"fatal: no commits\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, PatchFromCount(tt.raw))
		})
	}
}

func TestSplitVersion(t *testing.T) {
	tests := []struct {
		version string
		major   string
		minor   string
	}{
		{"1.2.0", "1", "2"},
		{"1.2.3.4", "1", "2"},
		{"3", "3", "0"},
		{"", "0", "0"},
		{"1..5", "1", "0"},
		{"2.0.0-beta.1", "2", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			major, minor := SplitVersion(tt.version)
			assert.Equal(t, tt.major, major)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestResolveStage(t *testing.T) {
	assert.Equal(t, "prod", ResolveStage("prod", "dev"))
	assert.Equal(t, "dev", ResolveStage("", "dev"))
	assert.Equal(t, UnknownStage, ResolveStage("", ""))
}

func TestNewStats_Fields(t *testing.T) {
	captured := time.UnixMilli(1700000000123)

	stats := NewStats(StatsInput{
		CapturedAt:    captured,
		CommitCount:   "7\n",
		Hash:          "abc123\n",
		Package:       Package{Version: "1.2.3.4"},
		ProviderStage: "dev",
		Status: RepoStatus{
			Ahead:    1,
			Behind:   2,
			Branch:   "main",
			Created:  5,
			Deleted:  1,
			Modified: 2,
			NotAdded: 3,
			Renamed:  4,
		},
	})

	assert.Equal(t, "7", stats.Patch)
	assert.Equal(t, "abc123", stats.Hash)
	assert.Equal(t, "main", stats.Branch)
	assert.Equal(t, 1, stats.Ahead)
	assert.Equal(t, 2, stats.Behind)
	assert.Equal(t, 10, stats.Delta, "created files are not part of the delta")
	assert.Equal(t, "1.2.3.4", stats.PkgVersion)
	assert.Equal(t, "1", stats.Major)
	assert.Equal(t, "2", stats.Minor)
	assert.Equal(t, "1.2.7", stats.Version)
	assert.Equal(t, "dev", stats.Stage)
	assert.Equal(t, int64(1700000000123), stats.TS)
	assert.Equal(t, stats.TS, stats.Timestamp)
}

func TestNewStats_MissingPackageVersion(t *testing.T) {
	stats := NewStats(StatsInput{CapturedAt: time.Now(), CommitCount: "3"})

	assert.Equal(t, DefaultPkgVersion, stats.PkgVersion)
	assert.Equal(t, "0", stats.Major)
	assert.Equal(t, "0", stats.Minor)
	assert.Equal(t, "0.0.3", stats.Version)
	assert.Equal(t, UnknownStage, stats.Stage)
}

func TestNewStats_EmptyPatchIsKept(t *testing.T) {
	stats := NewStats(StatsInput{CapturedAt: time.Now(), Package: Package{Version: "2.1.0"}})

	assert.Equal(t, "", stats.Patch)
	assert.Equal(t, "2.1.", stats.Version)
}

func TestStatsLookup(t *testing.T) {
	stats := Stats{Ahead: 3, Branch: "feature/x", Delta: 0, TS: 12, Timestamp: 12}

	v, ok := stats.Lookup("ahead")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	v, ok = stats.Lookup("branch")
	assert.True(t, ok)
	assert.Equal(t, "feature/x", v)

	v, ok = stats.Lookup("delta")
	assert.True(t, ok)
	assert.Equal(t, "0", v)

	_, ok = stats.Lookup("nope")
	assert.False(t, ok)
}

func TestStatsLookup_CoversEveryField(t *testing.T) {
	stats := Stats{}
	vars := stats.Vars()

	for _, name := range FieldNames() {
		_, ok := stats.Lookup(name)
		assert.True(t, ok, "lookup for %s", name)
		assert.Contains(t, vars, name)
	}
	assert.Len(t, vars, len(FieldNames()))
}
