package diffmatchpatch

import (
	"unicode/utf8"

	"github.com/fwojciec/foldview"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ foldview.WordDiffer = (*WordDiffer)(nil)

// similarityThreshold is the minimum shared-content ratio for intraline
// highlighting. Below it, paired lines render as whole-line replacements.
const similarityThreshold = 0.4

// WordDiffer computes intraline change segments for a paired old/new line.
type WordDiffer struct{}

// NewWordDiffer creates a new WordDiffer.
func NewWordDiffer() *WordDiffer {
	return &WordDiffer{}
}

// Diff returns segments for both the old and new strings,
// marking which portions changed between them.
func (d *WordDiffer) Diff(old, new string) (oldSegs, newSegs []foldview.Segment) {
	if old == "" && new == "" {
		return nil, nil
	}
	if old == "" {
		return nil, []foldview.Segment{{Text: new, Changed: true}}
	}
	if new == "" {
		return []foldview.Segment{{Text: old, Changed: true}}, nil
	}
	if old == new {
		seg := foldview.Segment{Text: old, Changed: false}
		return []foldview.Segment{seg}, []foldview.Segment{seg}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(old, new, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if !similar(diffs, old, new) {
		return []foldview.Segment{{Text: old, Changed: true}},
			[]foldview.Segment{{Text: new, Changed: true}}
	}

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			oldSegs = appendSegment(oldSegs, diff.Text, false)
			newSegs = appendSegment(newSegs, diff.Text, false)
		case diffmatchpatch.DiffDelete:
			oldSegs = appendSegment(oldSegs, diff.Text, true)
		case diffmatchpatch.DiffInsert:
			newSegs = appendSegment(newSegs, diff.Text, true)
		}
	}

	return oldSegs, newSegs
}

// similar reports whether enough content is shared for intraline emphasis
// to be useful: 2*equal / (len(old)+len(new)), measured in runes.
func similar(diffs []diffmatchpatch.Diff, old, new string) bool {
	equal := 0
	for _, diff := range diffs {
		if diff.Type == diffmatchpatch.DiffEqual {
			equal += utf8.RuneCountInString(diff.Text)
		}
	}
	total := utf8.RuneCountInString(old) + utf8.RuneCountInString(new)
	return float64(2*equal)/float64(total) >= similarityThreshold
}

// appendSegment extends the previous segment when its changed flag matches,
// so adjacent same-status runs stay merged.
func appendSegment(segs []foldview.Segment, text string, changed bool) []foldview.Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, foldview.Segment{Text: text, Changed: changed})
}
