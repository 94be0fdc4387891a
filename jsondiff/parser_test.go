package jsondiff_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/foldview"
	"github.com/fwojciec/foldview/jsondiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	input := `{
  "files": [
    {
      "path": "main.go",
      "chunks": [
        {"chunk_type": "equal", "content": "package main\n"},
        {"chunk_type": "delete", "content": "var x = 1\n"},
        {"chunk_type": "insert", "content": "var x = 2\nvar y = 3\n"}
      ]
    },
    {
      "path": "empty.go",
      "chunks": []
    }
  ]
}`

	p := jsondiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 2)

	f := diff.Files[0]
	assert.Equal(t, "main.go", f.Path)
	require.Len(t, f.Chunks, 3)
	assert.Equal(t, foldview.Chunk{Kind: foldview.Unchanged, Text: "package main\n"}, f.Chunks[0])
	assert.Equal(t, foldview.Chunk{Kind: foldview.Deleted, Text: "var x = 1\n"}, f.Chunks[1])
	assert.Equal(t, foldview.Chunk{Kind: foldview.Inserted, Text: "var x = 2\nvar y = 3\n"}, f.Chunks[2])

	assert.Equal(t, "empty.go", diff.Files[1].Path)
	assert.Empty(t, diff.Files[1].Chunks)
}

func TestParser_Parse_EmptyDocument(t *testing.T) {
	t.Parallel()

	p := jsondiff.NewParser()

	diff, err := p.Parse(strings.NewReader(`{"files": []}`))

	require.NoError(t, err)
	assert.Empty(t, diff.Files)
}

func TestParser_Parse_UnknownChunkType(t *testing.T) {
	t.Parallel()

	input := `{
  "files": [
    {
      "path": "main.go",
      "chunks": [
        {"chunk_type": "equal", "content": "a\n"},
        {"chunk_type": "modify", "content": "b\n"}
      ]
    }
  ]
}`

	p := jsondiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Nil(t, diff)
	assert.Contains(t, err.Error(), `unknown chunk_type "modify"`)
	assert.Contains(t, err.Error(), "main.go chunk 1")
}

func TestParser_Parse_MissingChunkType(t *testing.T) {
	t.Parallel()

	input := `{"files": [{"path": "a.go", "chunks": [{"content": "x\n"}]}]}`

	p := jsondiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.Error(t, err, "an absent chunk_type does not default to equal")
	assert.Nil(t, diff)
}

func TestParser_Parse_InvalidJSON(t *testing.T) {
	t.Parallel()

	p := jsondiff.NewParser()

	diff, err := p.Parse(strings.NewReader(`{"files": [`))

	require.Error(t, err)
	assert.Nil(t, diff)
}
