package mock

import "github.com/fwojciec/foldview"

// Compile-time interface verification.
var _ foldview.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of foldview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
