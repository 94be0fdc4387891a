package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/foldview"
)

// fileView caches what the model renders for one file. Lines are
// linearized once at construction; sections are recomputed whenever the
// expansion state or window width changes.
type fileView struct {
	path     string
	inserted int
	deleted  int
	lines    []foldview.Line
	sections []foldview.Section
}

// gapRow locates one interactive gap marker in the rendered content.
type gapRow struct {
	key      foldview.GapKey
	file     int // index into the model's files
	line     int // display line of the marker row
	expanded bool
}

// renderConfig holds all rendering parameters for renderDiff.
type renderConfig struct {
	files      []fileView
	collapsed  foldview.CollapsedFiles
	styles     foldview.Styles
	renderer   *lipgloss.Renderer
	width      int
	detector   foldview.LanguageDetector
	tokenizer  foldview.Tokenizer
	wordDiffer foldview.WordDiffer
	cursor     foldview.GapKey // gap with keyboard focus, zero when none
}

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// renderDiff converts folded files to a styled string.
// If renderer is nil, the default lipgloss renderer is used.
// Width is the terminal width for full-width backgrounds.
func renderDiff(cfg renderConfig) string {
	styles := cfg.styles
	renderer := cfg.renderer
	width := cfg.width

	// Calculate dynamic gutter width based on max line number in the diff
	gutterWidth := calculateGutterWidth(cfg.files)

	// Create lipgloss styles from color pairs
	fileHeaderStyle := styleFromColorPair(styles.FileHeader, renderer)
	gapStyle := styleFromColorPair(styles.GapMarker, renderer)
	insertedStyle := styleFromColorPair(styles.Inserted, renderer)
	deletedStyle := styleFromColorPair(styles.Deleted, renderer)
	contextStyle := styleFromColorPair(styles.Context, renderer)
	lineNumStyle := styleFromColorPair(styles.LineNumber, renderer)
	insertedGutterStyle := styleFromColorPair(styles.InsertedGutter, renderer)
	deletedGutterStyle := styleFromColorPair(styles.DeletedGutter, renderer)
	insertedHighlightStyle := styleFromColorPair(styles.InsertedHighlight, renderer)
	deletedHighlightStyle := styleFromColorPair(styles.DeletedHighlight, renderer)

	var sb strings.Builder
	for _, file := range cfg.files {
		// Detect language for syntax highlighting
		var language string
		if cfg.detector != nil {
			language = cfg.detector.DetectFromPath(file.path)
		}

		sb.WriteString(fileHeaderStyle.Render(fileHeader(file, width)))
		sb.WriteString("\n")

		// Collapsed files show only the header summary
		if cfg.collapsed.Collapsed(file.path) {
			continue
		}

		// Handle empty files (no content lines)
		if len(file.sections) == 0 {
			sb.WriteString(contextStyle.Render("(empty)"))
			sb.WriteString("\n")
			continue
		}

		for _, section := range file.sections {
			if section.Collapsed() {
				focused := section.Gap == cfg.cursor
				sb.WriteString(renderGapMarker(section.Gap, false, focused, gutterWidth, width, gapStyle))
				sb.WriteString("\n")
				continue
			}

			// Expanded gaps keep a marker row above their lines so the
			// toggle stays reachable
			if section.Kind == foldview.SectionExpanded {
				focused := section.Gap == cfg.cursor
				sb.WriteString(renderGapMarker(section.Gap, true, focused, gutterWidth, width, gapStyle))
				sb.WriteString("\n")
			}

			// Compute word diff segments for paired lines (delete followed by insert)
			lineSegments := computeLinePairSegments(section.Lines, cfg.wordDiffer)

			// Render lines with gutter and prefixes
			for i, line := range section.Lines {
				// Line number gutter with diff-aware styling
				var gutterStyle lipgloss.Style
				var lineStyle lipgloss.Style
				var highlightStyle lipgloss.Style
				switch line.Kind {
				case foldview.Inserted:
					gutterStyle = insertedGutterStyle
					lineStyle = insertedStyle
					highlightStyle = insertedHighlightStyle
				case foldview.Deleted:
					gutterStyle = deletedGutterStyle
					lineStyle = deletedStyle
					highlightStyle = deletedHighlightStyle
				default:
					gutterStyle = lineNumStyle
					lineStyle = contextStyle
				}
				sb.WriteString(formatGutter(line.OldNumber, line.NewNumber, gutterWidth, gutterStyle))

				// Add padding space between gutter and code prefix, styled with code line's background
				sb.WriteString(lineStyle.Render(" "))

				// Get prefix and content
				prefix := linePrefixFor(line.Kind)
				content := ExpandTabs(line.Text, 0)
				fullLine := prefix + content

				// Check if this line has word-level diff segments
				segments := lineSegments[i]

				var styledLine string
				if segments != nil {
					// Render with word-level highlighting
					styledLine = renderLineWithSegments(prefix, segments, lineStyle, highlightStyle, width)
				} else {
					// Try to tokenize for syntax highlighting
					var tokens []foldview.Token
					if cfg.tokenizer != nil && language != "" {
						tokens = cfg.tokenizer.Tokenize(language, content)
					}

					if tokens != nil {
						// Render with syntax highlighting (prefix + tokens)
						var colors foldview.ColorPair
						switch line.Kind {
						case foldview.Inserted:
							colors = styles.Inserted
						case foldview.Deleted:
							colors = styles.Deleted
						default:
							colors = styles.Context
						}
						styledLine = renderLineWithTokens(prefix, tokens, colors, renderer, width)
					} else {
						// Plain rendering - entire line including prefix
						switch line.Kind {
						case foldview.Inserted:
							styledLine = insertedStyle.Render(padLine(fullLine, width))
						case foldview.Deleted:
							styledLine = deletedStyle.Render(padLine(fullLine, width))
						default:
							styledLine = contextStyle.Render(fullLine)
						}
					}
				}
				sb.WriteString(styledLine)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// fileHeader formats the per-file header line with box-drawing and change
// statistics: ── filename ─────────────────── +N -M ──
func fileHeader(f fileView, width int) string {
	stats := fmt.Sprintf("+%d -%d", f.inserted, f.deleted)

	middle := "── " + f.path + " "
	end := " " + stats + " ──"

	fillWidth := width - lipgloss.Width(middle) - lipgloss.Width(end)
	if fillWidth < 3 {
		fillWidth = 3
	}

	return middle + strings.Repeat("─", fillWidth) + end
}

// renderGapMarker renders the placeholder row for a gap. Collapsed gaps
// invite expansion, expanded gaps invite collapse; the focused gap is
// shown reversed.
func renderGapMarker(gap foldview.GapKey, expanded, focused bool, gutterWidth, width int, style lipgloss.Style) string {
	var marker string
	if expanded {
		marker = fmt.Sprintf("▾ %d unchanged lines (enter to collapse)", gap.Span())
	} else {
		marker = fmt.Sprintf("▸ %d unchanged lines (enter to expand)", gap.Span())
	}
	if focused {
		style = style.Reverse(true)
	}
	// Indent past the gutter so the marker sits at the prefix column
	indent := strings.Repeat(" ", 2*gutterWidth+3)
	return style.Render(padLine(indent+marker, width))
}

// computeLinePairSegments identifies paired delete/insert lines and computes word-level diff segments.
// Returns a map from line index to segments. Lines without word-level diffs have nil segments.
// Only applies word-level highlighting when there's meaningful shared content (>30% unchanged).
//
// Handles both simple pairs (one delete followed by one insert) and runs of consecutive
// deletes followed by consecutive inserts (pairs them 1:1 in order).
func computeLinePairSegments(lines []foldview.Line, wordDiffer foldview.WordDiffer) map[int][]foldview.Segment {
	if wordDiffer == nil {
		return nil
	}

	result := make(map[int][]foldview.Segment)

	// Find runs of consecutive deleted lines followed by runs of inserted lines
	for i := 0; i < len(lines); i++ {
		if lines[i].Kind != foldview.Deleted {
			continue
		}

		// Found start of a delete run - count consecutive deletes
		deleteStart := i
		deleteEnd := i
		for deleteEnd < len(lines) && lines[deleteEnd].Kind == foldview.Deleted {
			deleteEnd++
		}

		// Check if immediately followed by inserted lines
		if deleteEnd >= len(lines) || lines[deleteEnd].Kind != foldview.Inserted {
			i = deleteEnd - 1 // Skip to end of delete run
			continue
		}

		// Count consecutive inserts
		insertStart := deleteEnd
		insertEnd := insertStart
		for insertEnd < len(lines) && lines[insertEnd].Kind == foldview.Inserted {
			insertEnd++
		}

		// Pair up deletes and inserts 1:1
		deleteCount := deleteEnd - deleteStart
		insertCount := insertEnd - insertStart
		pairCount := deleteCount
		if insertCount < pairCount {
			pairCount = insertCount
		}

		for j := 0; j < pairCount; j++ {
			delIdx := deleteStart + j
			insIdx := insertStart + j

			oldContent := ExpandTabs(lines[delIdx].Text, 0)
			newContent := ExpandTabs(lines[insIdx].Text, 0)
			oldSegs, newSegs := wordDiffer.Diff(oldContent, newContent)

			// Only use word-level highlighting if there's meaningful shared content.
			if hasSignificantUnchangedContent(oldSegs) && hasSignificantUnchangedContent(newSegs) {
				result[delIdx] = oldSegs
				result[insIdx] = newSegs
			}
		}

		i = insertEnd - 1 // Skip to end of insert run
	}

	return result
}

// hasSignificantUnchangedContent checks if segments have enough unchanged content
// to make word-level highlighting useful (at least 30% unchanged).
func hasSignificantUnchangedContent(segments []foldview.Segment) bool {
	if len(segments) == 0 {
		return false
	}

	var unchangedLen, totalLen int
	for _, seg := range segments {
		segLen := len(seg.Text)
		totalLen += segLen
		if !seg.Changed {
			unchangedLen += segLen
		}
	}

	if totalLen == 0 {
		return false
	}

	// Require at least 30% unchanged content for word-level diff to be useful
	return float64(unchangedLen)/float64(totalLen) >= 0.30
}

// renderLineWithSegments renders a line with word-level diff highlighting.
// Unchanged segments use baseStyle, changed segments use highlightStyle.
func renderLineWithSegments(prefix string, segments []foldview.Segment, baseStyle, highlightStyle lipgloss.Style, width int) string {
	var sb strings.Builder

	// Render prefix with base style
	sb.WriteString(baseStyle.Render(prefix))

	// Render each segment with appropriate style
	for _, seg := range segments {
		if seg.Changed {
			sb.WriteString(highlightStyle.Render(seg.Text))
		} else {
			sb.WriteString(baseStyle.Render(seg.Text))
		}
	}

	// Calculate current length and pad if needed
	currentLen := lipgloss.Width(prefix)
	for _, seg := range segments {
		currentLen += lipgloss.Width(seg.Text)
	}

	if currentLen < width {
		padding := strings.Repeat(" ", width-currentLen)
		sb.WriteString(baseStyle.Render(padding))
	}

	return sb.String()
}

// renderLineWithTokens renders a line with syntax highlighting.
// Each token gets its syntax foreground color combined with the diff background.
func renderLineWithTokens(prefix string, tokens []foldview.Token, colors foldview.ColorPair, renderer *lipgloss.Renderer, width int) string {
	var sb strings.Builder

	// Helper to create a new style with the renderer
	newStyle := func() lipgloss.Style {
		if renderer != nil {
			return renderer.NewStyle()
		}
		return lipgloss.NewStyle()
	}

	// Create base style with diff colors
	baseStyle := newStyle()
	if colors.Foreground != "" {
		baseStyle = baseStyle.Foreground(lipgloss.Color(colors.Foreground))
	}
	if colors.Background != "" {
		baseStyle = baseStyle.Background(lipgloss.Color(colors.Background))
	}

	// Render prefix with base style
	sb.WriteString(baseStyle.Render(prefix))

	// Render each token with syntax foreground + diff background
	for _, tok := range tokens {
		// Build style from scratch for each token
		style := newStyle()

		// Always apply diff background
		if colors.Background != "" {
			style = style.Background(lipgloss.Color(colors.Background))
		}

		// Use syntax foreground if provided, otherwise use diff foreground
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		} else if colors.Foreground != "" {
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}

		// Apply bold if specified by syntax
		if tok.Style.Bold {
			style = style.Bold(true)
		}

		sb.WriteString(style.Render(tok.Text))
	}

	// Calculate current length and pad if needed
	currentLen := lipgloss.Width(prefix)
	for _, tok := range tokens {
		currentLen += lipgloss.Width(tok.Text)
	}

	if currentLen < width {
		padding := strings.Repeat(" ", width-currentLen)
		sb.WriteString(baseStyle.Render(padding))
	}

	return sb.String()
}

// calculateGutterWidth determines the appropriate gutter width for a diff
// based on the maximum line number present in any file.
func calculateGutterWidth(files []fileView) int {
	maxLineNum := 0
	for _, file := range files {
		for _, line := range file.lines {
			if line.OldNumber > maxLineNum {
				maxLineNum = line.OldNumber
			}
			if line.NewNumber > maxLineNum {
				maxLineNum = line.NewNumber
			}
		}
	}
	width := digitWidth(maxLineNum)
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

// formatGutter formats the gutter column with old and new line numbers.
// Format: "  12    14 " for lines with both numbers
// Format: "  12       " for deleted lines (no new line number - empty space)
// Format: "       14 " for inserted lines (no old line number - empty space)
// No divider character - the color transition provides visual separation.
func formatGutter(oldNumber, newNumber, width int, style lipgloss.Style) string {
	oldStr := formatLineNum(oldNumber, width)
	newStr := formatLineNum(newNumber, width)
	gutter := fmt.Sprintf("%s %s ", oldStr, newStr)
	return style.Render(gutter)
}

// formatLineNum formats a line number for the gutter.
// Returns right-aligned number or empty space for zero (missing) line numbers.
func formatLineNum(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp foldview.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// linePrefixFor returns the appropriate prefix for a line kind.
func linePrefixFor(kind foldview.ChunkKind) string {
	switch kind {
	case foldview.Inserted:
		return "+"
	case foldview.Deleted:
		return "-"
	default:
		return " "
	}
}

// padLine pads a line with spaces to the specified display width.
// Uses lipgloss.Width() to correctly handle multi-byte Unicode characters.
// If the line is already wider, it is returned unchanged.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// computeLayout walks the same row accounting as renderDiff and reports
// where each file header lands and where every interactive gap marker
// lands, in display order. It must stay in lockstep with renderDiff.
func computeLayout(files []fileView, collapsed foldview.CollapsedFiles) (filePositions []int, gaps []gapRow) {
	lineNum := 0
	for fi, file := range files {
		// Track file position at the header line
		filePositions = append(filePositions, lineNum)
		lineNum++

		if collapsed.Collapsed(file.path) {
			continue
		}

		if len(file.sections) == 0 {
			// Empty file: one line for "(empty)" indicator
			lineNum++
			continue
		}

		for _, section := range file.sections {
			switch {
			case section.Collapsed():
				gaps = append(gaps, gapRow{key: section.Gap, file: fi, line: lineNum})
				lineNum++
			case section.Kind == foldview.SectionExpanded:
				gaps = append(gaps, gapRow{key: section.Gap, file: fi, line: lineNum, expanded: true})
				lineNum += 1 + len(section.Lines)
			default:
				lineNum += len(section.Lines)
			}
		}
	}
	return filePositions, gaps
}
