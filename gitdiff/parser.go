// Package gitdiff implements unified diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.Parser = (*Parser)(nil)

// Parser parses unified diff content into chunk runs using go-gitdiff.
//
// Chunks follow patch order: hunks contribute their lines back to back, so
// context a patch omits between hunks is absent from the result and line
// numbering restarts from the patch content, not the original file. Callers
// that need whole-file numbering should generate the patch with enough
// context to span the file (git diff -U<n>).
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads unified diff content and returns the chunked result.
func (p *Parser) Parse(r io.Reader) (*foldview.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &foldview.Diff{
		Files: make([]foldview.FileDiff, 0, len(files)),
	}

	for _, f := range files {
		result.Files = append(result.Files, convertFile(f))
	}

	return result, nil
}

// convertFile flattens a file's fragments into maximal same-kind chunk
// runs, coalescing across hunk boundaries. Binary files yield no chunks.
func convertFile(f *gitdiff.File) foldview.FileDiff {
	fd := foldview.FileDiff{Path: filePath(f)}
	if f.IsBinary {
		return fd
	}

	var (
		kind foldview.ChunkKind
		text strings.Builder
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		fd.Chunks = append(fd.Chunks, foldview.Chunk{Kind: kind, Text: text.String()})
		text.Reset()
	}

	for _, frag := range f.TextFragments {
		for _, l := range frag.Lines {
			k, ok := chunkKind(l.Op)
			if !ok {
				continue
			}
			if text.Len() > 0 && k != kind {
				flush()
			}
			kind = k
			text.WriteString(l.Line)
		}
	}
	flush()

	return fd
}

func chunkKind(op gitdiff.LineOp) (foldview.ChunkKind, bool) {
	switch op {
	case gitdiff.OpContext:
		return foldview.Unchanged, true
	case gitdiff.OpAdd:
		return foldview.Inserted, true
	case gitdiff.OpDelete:
		return foldview.Deleted, true
	}
	return 0, false
}

// filePath picks the display path: the post-image name unless the file was
// deleted, with any remaining diff prefix stripped.
func filePath(f *gitdiff.File) string {
	name := f.NewName
	if name == "" || f.IsDelete {
		name = f.OldName
	}
	name = strings.TrimPrefix(name, "a/")
	name = strings.TrimPrefix(name, "b/")
	return name
}
