// Package jsondiff implements diff exchange in the chunked JSON wire format:
// a document of files, each an ordered list of typed chunks.
package jsondiff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.Parser = (*Parser)(nil)

// Wire tags for chunk kinds.
const (
	tagEqual  = "equal"
	tagInsert = "insert"
	tagDelete = "delete"
)

type payload struct {
	Files []filePayload `json:"files"`
}

type filePayload struct {
	Path   string         `json:"path"`
	Chunks []chunkPayload `json:"chunks"`
}

type chunkPayload struct {
	ChunkType string `json:"chunk_type"`
	Content   string `json:"content"`
}

// Parser decodes chunked JSON diff payloads.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a diff payload. An unrecognized chunk_type is an error
// naming the value and its position rather than a silently skipped chunk.
func (p *Parser) Parse(r io.Reader) (*foldview.Diff, error) {
	var pl payload
	if err := json.NewDecoder(r).Decode(&pl); err != nil {
		return nil, fmt.Errorf("jsondiff: decode: %w", err)
	}

	diff := &foldview.Diff{
		Files: make([]foldview.FileDiff, 0, len(pl.Files)),
	}

	for _, f := range pl.Files {
		fd := foldview.FileDiff{Path: f.Path}
		for i, c := range f.Chunks {
			kind, err := chunkKind(c.ChunkType)
			if err != nil {
				return nil, fmt.Errorf("jsondiff: %s chunk %d: %w", f.Path, i, err)
			}
			fd.Chunks = append(fd.Chunks, foldview.Chunk{Kind: kind, Text: c.Content})
		}
		diff.Files = append(diff.Files, fd)
	}

	return diff, nil
}

func chunkKind(tag string) (foldview.ChunkKind, error) {
	switch tag {
	case tagEqual:
		return foldview.Unchanged, nil
	case tagInsert:
		return foldview.Inserted, nil
	case tagDelete:
		return foldview.Deleted, nil
	}
	return 0, fmt.Errorf("unknown chunk_type %q", tag)
}
