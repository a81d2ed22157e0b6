package ports

import (
	"context"

	"github.com/renato0307/versioninfo/internal/domain"
)

// RepoQuerier runs the read-only repository queries statistics are built from
type RepoQuerier interface {
	// CommitCount returns the raw output of the commit count query
	CommitCount(ctx context.Context) (string, error)

	// ShortHash returns the abbreviated hash of the current commit
	ShortHash(ctx context.Context) (string, error)

	// Status returns the branch, upstream tracking and file state counts
	Status(ctx context.Context) (domain.RepoStatus, error)
}
