// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.GitRunner = (*Runner)(nil)

// FullContext is a -U width larger than any real file. With it, every hunk
// spans its whole file, so parsed line numbers match file positions.
const FullContext = 1000000

// Runner executes git commands via shell.
type Runner struct {
	// ContextLines adds -U<n> to diff and show invocations when positive.
	ContextLines int
}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Diff returns the output of git diff run in the repository at repoPath.
// Extra args follow the subcommand (e.g. "--staged", a commit range, or
// path filters).
func (r *Runner) Diff(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmdArgs := []string{"-C", repoPath, "diff"}
	if r.ContextLines > 0 {
		cmdArgs = append(cmdArgs, fmt.Sprintf("-U%d", r.ContextLines))
	}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.CommandContext(ctx, "git", cmdArgs...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git diff failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return string(output), nil
}

// Show returns the diff for a specific commit hash.
func (r *Runner) Show(ctx context.Context, repoPath string, hash string) (string, error) {
	args := []string{"-C", repoPath, "show", "--format="}
	if r.ContextLines > 0 {
		args = append(args, fmt.Sprintf("-U%d", r.ContextLines))
	}
	args = append(args, hash)

	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git show failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return string(output), nil
}
