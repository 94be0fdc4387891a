package foldview

import (
	"fmt"
	"strings"
)

// TextFormatter renders a folded diff as unstyled text: a header per file,
// then one row per line with old/new gutter numbers and a -/+ prefix.
// Collapsed gaps render as a single marker row. This is the non-TTY output
// path and the rendering copied to the clipboard.
type TextFormatter struct {
	// ContextLines is the anchor window width. Zero means DefaultContextLines.
	ContextLines int

	// Collapsed marks files rendered as a header-only summary.
	Collapsed CollapsedFiles
}

// Format renders all files in the diff.
func (f *TextFormatter) Format(diff *Diff, expanded ExpansionState) string {
	if diff == nil {
		return ""
	}

	var sb strings.Builder
	for i, file := range diff.Files {
		if i > 0 {
			sb.WriteString("\n")
		}
		f.formatFile(&sb, file, expanded)
	}
	return sb.String()
}

// FormatFile renders a single file.
func (f *TextFormatter) FormatFile(file FileDiff, expanded ExpansionState) string {
	var sb strings.Builder
	f.formatFile(&sb, file, expanded)
	return sb.String()
}

func (f *TextFormatter) formatFile(sb *strings.Builder, file FileDiff, expanded ExpansionState) {
	inserted, deleted := file.Stats()
	fmt.Fprintf(sb, "── %s (+%d -%d)\n", file.Path, inserted, deleted)

	if f.Collapsed.Collapsed(file.Path) {
		return
	}

	lines := Linearize(file.Chunks)
	sections := Fold(file.Path, lines, f.ContextLines, expanded)
	width := gutterWidth(lines)

	for _, section := range sections {
		if section.Collapsed() {
			fmt.Fprintf(sb, "%s ▸ %d unchanged lines\n",
				strings.Repeat(" ", 2*width+1), section.Gap.Span())
			continue
		}
		for _, line := range section.Lines {
			fmt.Fprintf(sb, "%s %s %s%s\n",
				formatNumber(line.OldNumber, width),
				formatNumber(line.NewNumber, width),
				linePrefix(line.Kind),
				line.Text)
		}
	}
}

// linePrefix returns the conventional diff prefix for a line kind.
func linePrefix(kind ChunkKind) string {
	switch kind {
	case Inserted:
		return "+"
	case Deleted:
		return "-"
	default:
		return " "
	}
}

// formatNumber right-aligns a gutter number, or blanks for zero.
func formatNumber(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// gutterWidth returns the digit width needed for the largest line number.
func gutterWidth(lines []Line) int {
	maxNum := 0
	for _, line := range lines {
		if line.OldNumber > maxNum {
			maxNum = line.OldNumber
		}
		if line.NewNumber > maxNum {
			maxNum = line.NewNumber
		}
	}
	width := 1
	for maxNum >= 10 {
		width++
		maxNum /= 10
	}
	return width
}
