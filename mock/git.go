package mock

import (
	"context"

	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of foldview.GitRunner.
type GitRunner struct {
	DiffFn func(ctx context.Context, repoPath string, args ...string) (string, error)
	ShowFn func(ctx context.Context, repoPath string, hash string) (string, error)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath string, args ...string) (string, error) {
	return g.DiffFn(ctx, repoPath, args...)
}

func (g *GitRunner) Show(ctx context.Context, repoPath string, hash string) (string, error) {
	return g.ShowFn(ctx, repoPath, hash)
}
