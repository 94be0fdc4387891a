package foldview

import "strings"

// Linearize converts the ordered chunk runs of one file into per-line
// records. Old numbers advance on Unchanged and Deleted lines, new numbers
// on Unchanged and Inserted lines, each starting at 1. An empty chunk list
// yields an empty sequence rather than an error.
func Linearize(chunks []Chunk) []Line {
	var lines []Line
	oldNum, newNum := 1, 1

	for _, c := range chunks {
		for _, text := range splitLines(c.Text) {
			line := Line{Text: text, Kind: c.Kind}
			switch c.Kind {
			case Unchanged:
				line.OldNumber = oldNum
				line.NewNumber = newNum
				oldNum++
				newNum++
			case Deleted:
				line.OldNumber = oldNum
				oldNum++
			case Inserted:
				line.NewNumber = newNum
				newNum++
			}
			lines = append(lines, line)
		}
	}

	return lines
}

// splitLines splits chunk text on "\n", discarding the empty element a
// trailing separator leaves behind: that element is an artifact of the
// join, not a line. Empty text yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
