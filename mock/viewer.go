package mock

import (
	"context"

	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of foldview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, diff *foldview.Diff) error
}

func (v *Viewer) View(ctx context.Context, diff *foldview.Diff) error {
	return v.ViewFn(ctx, diff)
}
