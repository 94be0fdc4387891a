package foldview

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in a folded diff.
type Styles struct {
	Inserted          ColorPair // Style for inserted lines (+)
	Deleted           ColorPair // Style for deleted lines (-)
	Context           ColorPair // Style for unchanged lines
	GapMarker         ColorPair // Style for collapsed-gap placeholder rows
	FileHeader        ColorPair // Style for per-file header rows
	LineNumber        ColorPair // Style for line numbers in the gutter
	InsertedGutter    ColorPair // Gutter style on inserted lines
	DeletedGutter     ColorPair // Gutter style on deleted lines
	InsertedHighlight ColorPair // Changed text within inserted lines (word-level diff)
	DeletedHighlight  ColorPair // Changed text within deleted lines (word-level diff)
}

// Palette holds the semantic colors a theme is built from, including the
// syntax highlighting colors consumed by tokenizer style functions.
type Palette struct {
	// Base colors
	Background string
	Foreground string

	// Diff colors
	Inserted string
	Deleted  string
	Modified string
	Context  string

	// Syntax highlighting colors
	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	// UI chrome colors
	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles for rendering folded diffs.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
