// Package foldview provides domain types for segmenting and viewing diffs.
package foldview

import (
	"context"
	"io"
	"strings"
)

// Diff represents a complete diff containing one or more file changes.
type Diff struct {
	Files []FileDiff
}

// Stats returns the total number of inserted and deleted lines across all files.
func (d *Diff) Stats() (inserted, deleted int) {
	for _, f := range d.Files {
		ins, del := f.Stats()
		inserted += ins
		deleted += del
	}
	return inserted, deleted
}

// FileDiff represents the pre-computed changes to a single file as an
// ordered sequence of chunk runs.
type FileDiff struct {
	Path   string
	Chunks []Chunk
}

// Stats returns the number of inserted and deleted lines in the file.
// Counts are structural: one per line separator in the chunk text, so a
// chunk without a trailing separator contributes one less than its line
// count. This keeps header summaries consistent with the chunk encoding.
func (f FileDiff) Stats() (inserted, deleted int) {
	for _, c := range f.Chunks {
		switch c.Kind {
		case Inserted:
			inserted += strings.Count(c.Text, "\n")
		case Deleted:
			deleted += strings.Count(c.Text, "\n")
		}
	}
	return inserted, deleted
}

// Chunk is one contiguous run of same-kind lines from a file diff.
// Text holds the run's lines joined by "\n"; a trailing separator is
// permitted and carries no additional meaning.
type Chunk struct {
	Kind ChunkKind
	Text string
}

// ChunkKind identifies the origin of a chunk's lines.
type ChunkKind int

// Chunk kinds.
const (
	Unchanged ChunkKind = iota
	Inserted
	Deleted
)

// Line represents a single line derived from a chunk.
type Line struct {
	Text      string
	Kind      ChunkKind
	OldNumber int // 0 if line is Inserted
	NewNumber int // 0 if line is Deleted
}

// Section is a contiguous slice of lines grouped for display.
type Section struct {
	Kind  SectionKind
	Lines []Line
	Gap   GapKey // zero unless the section is a placeholder or expanded gap
}

// Collapsed reports whether the section is a placeholder standing in for
// hidden lines identified by its gap key.
func (s Section) Collapsed() bool {
	return s.Kind == SectionContext && !s.Gap.IsZero() && len(s.Lines) == 0
}

// SectionKind identifies how a section should be displayed.
type SectionKind int

// Section kinds.
const (
	SectionContext SectionKind = iota
	SectionChange
	SectionExpanded
)

// GapKey identifies a collapsible run of unchanged lines within a file.
// Start and End index the file's linearized line sequence (End exclusive),
// so a key stays stable as long as the underlying chunk list is unchanged.
// The zero value marks a section with no associated gap.
type GapKey struct {
	Path  string
	Start int
	End   int
}

// IsZero reports whether k is the zero key.
func (k GapKey) IsZero() bool {
	return k == GapKey{}
}

// Span returns the number of lines the gap hides.
func (k GapKey) Span() int {
	return k.End - k.Start
}

// Segment represents a portion of text within a line for word-level diffing.
// Used to highlight specific changed words/characters within modified lines.
type Segment struct {
	Text    string // The text content of this segment
	Changed bool   // True if this segment differs between old/new versions
}

// Parser parses diff content into the chunked representation.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Differ computes the chunked diff between two versions of a file's content.
type Differ interface {
	Diff(path, oldText, newText string) FileDiff
}

// Viewer displays a diff and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, diff *Diff) error
}

// WordDiffer computes word-level differences between two strings.
type WordDiffer interface {
	// Diff returns segments for both the old and new strings,
	// marking which portions changed between them.
	Diff(old, new string) (oldSegs, newSegs []Segment)
}

// GitRunner provides access to git operations for extracting diffs.
type GitRunner interface {
	// Diff returns the output of git diff run in the repository at repoPath.
	Diff(ctx context.Context, repoPath string, args ...string) (string, error)
	// Show returns the diff for a specific commit hash.
	Show(ctx context.Context, repoPath string, hash string) (string, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
