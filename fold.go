package foldview

// Context window widths. Anchors of this many unchanged lines stay visible
// on each side of a change; the remainder of a long context run collapses
// behind a gap.
const (
	DefaultContextLines = 3
	CompactContextLines = 2
)

// Fold partitions a file's linearized lines into display sections: context
// runs, change runs, and collapsible gaps. Long context runs keep
// contextLines of anchor on each side that borders a change; the middle
// collapses to a zero-line placeholder unless its key is in expanded, in
// which case it appears as an expanded section in the same position. Runs
// no longer than twice the window, and runs bordering no change at all,
// stay whole.
//
// Fold is a pure function of its inputs: it never mutates expanded, and
// identical inputs yield identical output.
func Fold(path string, lines []Line, contextLines int, expanded ExpansionState) []Section {
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}

	var sections []Section
	for i := 0; i < len(lines); {
		runEnd := i
		if lines[i].Kind == Unchanged {
			for runEnd < len(lines) && lines[runEnd].Kind == Unchanged {
				runEnd++
			}
			sections = foldContextRun(sections, path, lines, i, runEnd, contextLines, expanded)
		} else {
			for runEnd < len(lines) && lines[runEnd].Kind != Unchanged {
				runEnd++
			}
			sections = append(sections, Section{Kind: SectionChange, Lines: lines[i:runEnd]})
		}
		i = runEnd
	}

	return sections
}

// FoldFile linearizes and folds a single file in one call.
func FoldFile(f FileDiff, contextLines int, expanded ExpansionState) []Section {
	return Fold(f.Path, Linearize(f.Chunks), contextLines, expanded)
}

// foldContextRun emits the sections for one maximal run of unchanged lines
// spanning [start, end).
func foldContextRun(sections []Section, path string, lines []Line, start, end, window int, expanded ExpansionState) []Section {
	length := end - start
	hasPrev := start > 0
	hasNext := end < len(lines)

	// Short runs are not worth collapsing: the hidden middle would be
	// smaller than the two anchors combined. Runs bordering no change
	// (a file with none) stay fully visible.
	if length <= 2*window || (!hasPrev && !hasNext) {
		return append(sections, Section{Kind: SectionContext, Lines: lines[start:end]})
	}

	i := start
	if hasPrev {
		sections = append(sections, Section{Kind: SectionContext, Lines: lines[i : i+window]})
		i += window
	}

	midEnd := end
	if hasNext {
		midEnd = end - window
	}
	if i < midEnd {
		key := GapKey{Path: path, Start: i, End: midEnd}
		if expanded.Expanded(key) {
			sections = append(sections, Section{Kind: SectionExpanded, Lines: lines[i:midEnd], Gap: key})
		} else {
			sections = append(sections, Section{Kind: SectionContext, Gap: key})
		}
	}

	if hasNext {
		sections = append(sections, Section{Kind: SectionContext, Lines: lines[midEnd:end]})
	}

	return sections
}
