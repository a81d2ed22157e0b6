package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// CLIRepository implements ports.RepoQuerier using local git commands
type CLIRepository struct {
	binary string
	dir    string
}

// Verify interface compliance at compile time
var _ ports.RepoQuerier = (*CLIRepository)(nil)

// NewCLIRepository creates a CLIRepository querying the repository containing dir
func NewCLIRepository(dir string) *CLIRepository {
	return &CLIRepository{
		binary: "git",
		dir:    dir,
	}
}

// CommitCount implements RepoQuerier.CommitCount
func (r *CLIRepository) CommitCount(ctx context.Context) (string, error) {
	return r.run(ctx, "rev-list", "--count", "HEAD")
}

// ShortHash implements RepoQuerier.ShortHash
func (r *CLIRepository) ShortHash(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Status implements RepoQuerier.Status
func (r *CLIRepository) Status(ctx context.Context) (domain.RepoStatus, error) {
	out, err := r.run(ctx, "status", "--porcelain=v2", "--branch", "--untracked-files=all")
	if err != nil {
		return domain.RepoStatus{}, err
	}

	status, err := parseStatus(out)
	if err != nil {
		return domain.RepoStatus{}, &domain.VcsQueryError{Query: "status", Err: err}
	}
	return status, nil
}

// run executes a read-only git command and returns its stdout
func (r *CLIRepository) run(ctx context.Context, args ...string) (string, error) {
	query := strings.Join(args, " ")
	logging.Logger.Debug("Running git query", "dir", r.dir, "query", query)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir
	// Never take optional locks: status must not refresh the index
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		qerr := &domain.VcsQueryError{
			Err:    err,
			Query:  query,
			Stderr: strings.TrimSpace(stderr.String()),
		}
		switch {
		case ctx.Err() != nil:
			qerr.Err = ctx.Err()
		case errors.Is(err, exec.ErrNotFound):
			qerr.Err = fmt.Errorf("git executable not found: %w", err)
		case strings.Contains(qerr.Stderr, "not a git repository"):
			qerr.Err = fmt.Errorf("%w: %v", domain.ErrNotARepository, err)
		}
		logging.Logger.Debug("Git query failed", "query", query, "error", qerr)
		return "", qerr
	}

	return string(out), nil
}
