package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a git working copy with a package descriptor and an optional
// service definition, used as the --dir of a command.
type TestRepo struct {
	Path string
	tb   testing.TB
}

// NewTestRepo creates a repository on branch "main" with one commit holding
// a package.json at version pkgVersion. An empty pkgVersion omits the file.
func NewTestRepo(tb testing.TB, pkgVersion string) *TestRepo {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "service")
	if err := os.MkdirAll(path, 0755); err != nil {
		tb.Fatalf("Failed to create repository directory: %v", err)
	}

	runGitCommand(tb, path, "init")
	runGitCommand(tb, path, "config", "user.email", "test@example.com")
	runGitCommand(tb, path, "config", "user.name", "Test User")

	repo := &TestRepo{Path: path, tb: tb}

	if pkgVersion != "" {
		repo.WriteFile("package.json", fmt.Sprintf("{\n  \"name\": \"service\",\n  \"version\": %q\n}\n", pkgVersion))
	} else {
		repo.WriteFile("README.md", "# Service\n")
	}
	repo.CommitAll("Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, path, "branch", "-M", "main")

	return repo
}

// WriteFile writes a file relative to the repository root.
func (r *TestRepo) WriteFile(name, content string) string {
	r.tb.Helper()

	full := filepath.Join(r.Path, name)
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return full
}

// CommitAll stages every change and commits it.
func (r *TestRepo) CommitAll(message string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, "add", "-A")
	runGitCommand(r.tb, r.Path, "commit", "--allow-empty", "-m", message)
}

// Commit creates n empty commits.
func (r *TestRepo) Commit(n int) {
	r.tb.Helper()
	for i := 0; i < n; i++ {
		runGitCommand(r.tb, r.Path, "commit", "--allow-empty", "-m", fmt.Sprintf("Commit %d", i+1))
	}
}

// Checkout creates and switches to a new branch.
func (r *TestRepo) Checkout(branch string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, "checkout", "-b", branch)
}

// Head returns the abbreviated hash of HEAD.
func (r *TestRepo) Head() string {
	r.tb.Helper()
	return gitOutput(r.tb, r.Path, "rev-parse", "--short", "HEAD")
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

func gitCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	return cmd
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	output, err := gitCommand(dir, args...).CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}

func gitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	output, err := gitCommand(dir, args...).Output()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v", args, dir, err)
	}
	return strings.TrimSpace(string(output))
}
