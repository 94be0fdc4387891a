// Package diffmatchpatch computes chunked diffs using sergi/go-diff.
package diffmatchpatch

import (
	"strings"

	"github.com/fwojciec/foldview"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ foldview.Differ = (*Differ)(nil)

// Differ computes line-level chunk runs between two versions of a file.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares oldText and newText line by line and returns the file's
// chunk runs in diff order. Within a replacement, the deleted run precedes
// the inserted one.
func (d *Differ) Diff(path, oldText, newText string) foldview.FileDiff {
	fd := foldview.FileDiff{Path: path}
	if oldText == newText {
		if oldText != "" {
			fd.Chunks = []foldview.Chunk{{Kind: foldview.Unchanged, Text: oldText}}
		}
		return fd
	}

	dmp := diffmatchpatch.New()

	// Line mode: each distinct line becomes one rune, the diff runs over
	// those runes, and the results decode back through the line table.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				b.WriteString(lineArray[idx])
			}
		}
		return b.String()
	}

	for _, diff := range diffs {
		text := decode(diff.Text)
		if text == "" {
			continue
		}
		fd.Chunks = append(fd.Chunks, foldview.Chunk{Kind: chunkKind(diff.Type), Text: text})
	}

	return fd
}

func chunkKind(op diffmatchpatch.Operation) foldview.ChunkKind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return foldview.Inserted
	case diffmatchpatch.DiffDelete:
		return foldview.Deleted
	default:
		return foldview.Unchanged
	}
}
