package jsondiff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/foldview"
)

// Writer encodes diffs into the chunked JSON wire format, the inverse of
// Parser. Output parses back to an equal diff.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes diff to out as one indented JSON document.
func (wr *Writer) Write(out io.Writer, diff *foldview.Diff) error {
	pl := payload{
		Files: make([]filePayload, 0, len(diff.Files)),
	}

	for _, f := range diff.Files {
		fp := filePayload{
			Path:   f.Path,
			Chunks: make([]chunkPayload, 0, len(f.Chunks)),
		}
		for _, c := range f.Chunks {
			fp.Chunks = append(fp.Chunks, chunkPayload{
				ChunkType: chunkTag(c.Kind),
				Content:   c.Text,
			})
		}
		pl.Files = append(pl.Files, fp)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pl); err != nil {
		return fmt.Errorf("jsondiff: encode: %w", err)
	}
	return nil
}

func chunkTag(kind foldview.ChunkKind) string {
	switch kind {
	case foldview.Inserted:
		return tagInsert
	case foldview.Deleted:
		return tagDelete
	default:
		return tagEqual
	}
}
