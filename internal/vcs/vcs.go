// Package vcs supplies the repository context and the bounded git diff
// primitive consumed by the diff aligner. Every git invocation runs
// under a deadline and is reaped on timeout.
package vcs

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"coderead/internal/errors"
)

// DefaultTimeout bounds any single git invocation.
const DefaultTimeout = 5 * time.Second

// RepoContext identifies the repository a file lives in, if any. It is
// passed explicitly so the aligner never probes ambient state itself.
type RepoContext struct {
	Root      string
	Available bool
}

// Detect resolves the repository containing path. A file outside any
// working tree, or a git binary that is absent or slow, yields an
// unavailable context rather than an error.
func Detect(path string, timeout time.Duration) RepoContext {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return RepoContext{}
	}

	return RepoContext{
		Root:      strings.TrimSpace(string(out)),
		Available: true,
	}
}

// Differ produces a unified diff for one file against the last
// committed revision.
type Differ interface {
	Diff(ctx context.Context, path string) (string, error)
}

// GitDiffer shells out to git for diffs, bounded by Timeout.
type GitDiffer struct {
	Repo    RepoContext
	Timeout time.Duration
}

// NewGitDiffer creates a differ over the given repository context.
func NewGitDiffer(repo RepoContext, timeout time.Duration) *GitDiffer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GitDiffer{Repo: repo, Timeout: timeout}
}

// Diff returns the unified diff of path against HEAD. Any failure —
// no repository, tool missing, timeout — comes back as a
// DIFF_UNAVAILABLE error for the caller to absorb.
func (g *GitDiffer) Diff(ctx context.Context, path string) (string, error) {
	if !g.Repo.Available {
		return "", errors.New(errors.DiffUnavailable, "no repository context", nil)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New(errors.DiffUnavailable, "cannot resolve path", err)
	}
	rel, err := filepath.Rel(g.Repo.Root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.New(errors.DiffUnavailable, "file outside repository", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	// CommandContext kills and reaps the process when the deadline
	// fires, satisfying the scoped-acquisition contract.
	cmd := exec.CommandContext(ctx, "git", "diff", "HEAD", "--", rel)
	cmd.Dir = g.Repo.Root
	out, err := cmd.Output()
	if err != nil {
		return "", errors.New(errors.DiffUnavailable, "git diff failed", err)
	}

	return string(out), nil
}
