package mock

import "github.com/fwojciec/foldview"

// Compile-time interface verification.
var _ foldview.Differ = (*Differ)(nil)

// Differ is a mock implementation of foldview.Differ.
type Differ struct {
	DiffFn func(path, oldText, newText string) foldview.FileDiff
}

func (d *Differ) Diff(path, oldText, newText string) foldview.FileDiff {
	return d.DiffFn(path, oldText, newText)
}

// Compile-time interface verification.
var _ foldview.WordDiffer = (*WordDiffer)(nil)

// WordDiffer is a mock implementation of foldview.WordDiffer.
type WordDiffer struct {
	DiffFn func(old, new string) (oldSegs, newSegs []foldview.Segment)
}

func (d *WordDiffer) Diff(old, new string) (oldSegs, newSegs []foldview.Segment) {
	return d.DiffFn(old, new)
}
