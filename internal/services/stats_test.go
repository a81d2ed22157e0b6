package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/versioninfo/internal/domain"
	portsmocks "github.com/renato0307/versioninfo/internal/ports/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestCollector returns a collector with a fixed clock and environment
func newTestCollector(repo *portsmocks.MockRepoQuerier, env map[string]string) *StatsCollector {
	c := NewStatsCollector(repo)
	c.now = func() time.Time { return fixedNow }
	c.getenv = func(name string) string { return env[name] }
	return c
}

// expectRepo sets up a repository answering every query successfully
func expectRepo(repo *portsmocks.MockRepoQuerier, count, hash string, status domain.RepoStatus) {
	repo.EXPECT().CommitCount(mock.Anything).Return(count, nil)
	repo.EXPECT().ShortHash(mock.Anything).Return(hash, nil)
	repo.EXPECT().Status(mock.Anything).Return(status, nil)
}

func TestCollect_AssemblesRecord(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	expectRepo(repo, "7\n", "abc123\n", domain.RepoStatus{
		Ahead:    1,
		Behind:   2,
		Branch:   "main",
		Modified: 1,
		NotAdded: 2,
	})
	collector := newTestCollector(repo, nil)

	stats, err := collector.Collect(context.Background(), domain.Package{Version: "1.2.0"}, "dev")

	require.NoError(t, err)
	assert.Equal(t, domain.Stats{
		Ahead:      1,
		Behind:     2,
		Branch:     "main",
		Delta:      3,
		Hash:       "abc123",
		Major:      "1",
		Minor:      "2",
		Patch:      "7",
		PkgVersion: "1.2.0",
		Stage:      "dev",
		TS:         fixedNow.UnixMilli(),
		Timestamp:  fixedNow.UnixMilli(),
		Version:    "1.2.7",
	}, stats)
}

func TestCollect_StagePrecedence(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		providerStage string
		expected      string
	}{
		{"environment wins", map[string]string{"STAGE": "prod"}, "dev", "prod"},
		{"provider stage", nil, "dev", "dev"},
		{"unknown", nil, "", "unknown"},
		{"empty environment ignored", map[string]string{"STAGE": ""}, "dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockRepoQuerier(t)
			expectRepo(repo, "1", "abc", domain.RepoStatus{Branch: "main"})
			collector := newTestCollector(repo, tt.env)

			stats, err := collector.Collect(context.Background(), domain.Package{Version: "1.0.0"}, tt.providerStage)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, stats.Stage)
		})
	}
}

func TestCollect_QueryFailure(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	queryErr := &domain.VcsQueryError{Query: "rev-parse --short HEAD", Err: domain.ErrNotARepository}
	repo.EXPECT().CommitCount(mock.Anything).Return("3", nil)
	repo.EXPECT().ShortHash(mock.Anything).Return("", queryErr)
	repo.EXPECT().Status(mock.Anything).Return(domain.RepoStatus{}, nil)
	collector := newTestCollector(repo, nil)

	stats, err := collector.Collect(context.Background(), domain.Package{Version: "1.0.0"}, "dev")

	require.Error(t, err)
	assert.Same(t, queryErr, err)
	assert.Equal(t, domain.Stats{}, stats)
}

func TestCollect_WrapsPlainErrors(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	boom := errors.New("boom")
	repo.EXPECT().CommitCount(mock.Anything).Return("", boom)
	repo.EXPECT().ShortHash(mock.Anything).Return("abc", nil)
	repo.EXPECT().Status(mock.Anything).Return(domain.RepoStatus{}, nil)
	collector := newTestCollector(repo, nil)

	_, err := collector.Collect(context.Background(), domain.Package{}, "")

	var vcsErr *domain.VcsQueryError
	require.ErrorAs(t, err, &vcsErr)
	assert.Equal(t, "rev-list --count HEAD", vcsErr.Query)
	assert.ErrorIs(t, err, boom)
}

func TestCollect_CancelsSiblingQueries(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	repo.EXPECT().CommitCount(mock.Anything).Return("", errors.New("boom"))
	repo.EXPECT().ShortHash(mock.Anything).Return("abc", nil)
	repo.EXPECT().Status(mock.Anything).RunAndReturn(func(ctx context.Context) (domain.RepoStatus, error) {
		<-ctx.Done()
		return domain.RepoStatus{}, ctx.Err()
	})
	collector := newTestCollector(repo, nil)

	_, err := collector.Collect(context.Background(), domain.Package{}, "")

	require.Error(t, err)
}

func TestCollect_EmptyPatchPreserved(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	expectRepo(repo, "fatal\n", "abc", domain.RepoStatus{Branch: "main"})
	collector := newTestCollector(repo, nil)

	stats, err := collector.Collect(context.Background(), domain.Package{Version: "2.5"}, "")

	require.NoError(t, err)
	assert.Empty(t, stats.Patch)
	assert.Equal(t, "2.5.", stats.Version)
}

func TestCollect_RecordIndependentOfQueryOrder(t *testing.T) {
	repo := portsmocks.NewMockRepoQuerier(t)
	countDone := make(chan struct{})
	statusDone := make(chan struct{})

	// The hash query only answers after the other two have finished
	repo.EXPECT().CommitCount(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		defer close(countDone)
		return "3", nil
	})
	repo.EXPECT().Status(mock.Anything).RunAndReturn(func(context.Context) (domain.RepoStatus, error) {
		defer close(statusDone)
		return domain.RepoStatus{Branch: "main"}, nil
	})
	repo.EXPECT().ShortHash(mock.Anything).RunAndReturn(func(ctx context.Context) (string, error) {
		for _, done := range []chan struct{}{countDone, statusDone} {
			select {
			case <-done:
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		return "fff000", nil
	})
	collector := newTestCollector(repo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stats, err := collector.Collect(ctx, domain.Package{Version: "2.1.0"}, "")

	require.NoError(t, err)
	assert.Equal(t, "3", stats.Patch)
	assert.Equal(t, "fff000", stats.Hash)
	assert.Equal(t, "main", stats.Branch)
	assert.Equal(t, "2.1.3", stats.Version)
}
