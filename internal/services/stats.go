package services

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// StageEnvVar overrides the deployment stage when set
const StageEnvVar = "STAGE"

// StatsCollector builds the statistics record from repository queries
type StatsCollector struct {
	getenv func(string) string
	now    func() time.Time
	repo   ports.RepoQuerier
}

// NewStatsCollector creates a new StatsCollector
func NewStatsCollector(repo ports.RepoQuerier) *StatsCollector {
	return &StatsCollector{
		getenv: os.Getenv,
		now:    time.Now,
		repo:   repo,
	}
}

// Collect runs the repository queries concurrently and assembles the record.
// The queries have no fixed order, so their debug log lines interleave
// differently between runs; the record does not depend on it.
// The caller bounds the queries through ctx. Any failed query aborts the
// collection and no partial record is returned.
func (c *StatsCollector) Collect(ctx context.Context, pkg domain.Package, providerStage string) (domain.Stats, error) {
	logging.Logger.Debug("Collecting repository stats")

	var (
		count  string
		hash   string
		status domain.RepoStatus
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := c.repo.CommitCount(ctx)
		if err != nil {
			return asQueryError("rev-list --count HEAD", err)
		}
		count = out
		return nil
	})

	g.Go(func() error {
		out, err := c.repo.ShortHash(ctx)
		if err != nil {
			return asQueryError("rev-parse --short HEAD", err)
		}
		hash = out
		return nil
	})

	g.Go(func() error {
		out, err := c.repo.Status(ctx)
		if err != nil {
			return asQueryError("status --porcelain=v2 --branch --untracked-files=all", err)
		}
		status = out
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to collect repository stats", "error", err)
		return domain.Stats{}, err
	}

	stats := domain.NewStats(domain.StatsInput{
		CapturedAt:    c.now(),
		CommitCount:   count,
		EnvStage:      c.getenv(StageEnvVar),
		Hash:          hash,
		Package:       pkg,
		ProviderStage: providerStage,
		Status:        status,
	})

	logging.Logger.Debug("Repository stats collected",
		"patch", stats.Patch,
		"hash", stats.Hash,
		"branch", stats.Branch,
		"delta", stats.Delta,
		"stage", stats.Stage)

	return stats, nil
}

// asQueryError makes sure a failed query surfaces as *domain.VcsQueryError
func asQueryError(query string, err error) error {
	var vcsErr *domain.VcsQueryError
	if errors.As(err, &vcsErr) {
		return err
	}
	return &domain.VcsQueryError{Err: err, Query: query}
}
