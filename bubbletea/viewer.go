// Package bubbletea provides a terminal UI viewer for folded diffs using
// the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/foldview"
)

// Model is the Bubble Tea model for viewing folded diffs. It owns the
// expansion and file-collapse state; every toggle mutates the state, then
// re-folds and re-renders in one step so the view never shows a section
// list computed from a different state than the one it displays.
type Model struct {
	diff *foldview.Diff

	// Fold state
	files         []fileView
	expansion     foldview.ExpansionState
	collapsed     foldview.CollapsedFiles
	contextWidth  int
	compact       bool
	filePositions []int
	gaps          []gapRow
	cursor        int // index into gaps, -1 when there are none

	// Supporting services (all optional)
	detector   foldview.LanguageDetector
	tokenizer  foldview.Tokenizer
	wordDiffer foldview.WordDiffer
	clipboard  foldview.Clipboard

	// UI state
	viewport   viewport.Model
	keymap     KeyMap
	styles     foldview.Styles
	palette    foldview.Palette
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer     *lipgloss.Renderer
	theme        foldview.Theme
	detector     foldview.LanguageDetector
	tokenizer    foldview.Tokenizer
	wordDiffer   foldview.WordDiffer
	clipboard    foldview.Clipboard
	contextLines int
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t foldview.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d foldview.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.detector = d
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t foldview.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithWordDiffer sets the word differ for word-level highlighting.
func WithWordDiffer(d foldview.WordDiffer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.wordDiffer = d
	}
}

// WithClipboard sets the clipboard used to copy file renderings.
func WithClipboard(c foldview.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithContextLines sets the context window width used when the viewer is
// not in compact mode.
func WithContextLines(n int) ModelOption {
	return func(cfg *modelConfig) {
		cfg.contextLines = n
	}
}

// NewModel creates a new Model for the given diff.
func NewModel(diff *foldview.Diff, opts ...ModelOption) Model {
	cfg := &modelConfig{contextLines: foldview.DefaultContextLines}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.contextLines <= 0 {
		cfg.contextLines = foldview.DefaultContextLines
	}

	var styles foldview.Styles
	var palette foldview.Palette
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
		palette = cfg.theme.Palette()
	}

	m := Model{
		diff:         diff,
		expansion:    foldview.NewExpansionState(),
		collapsed:    foldview.NewCollapsedFiles(),
		contextWidth: cfg.contextLines,
		cursor:       -1,
		detector:     cfg.detector,
		tokenizer:    cfg.tokenizer,
		wordDiffer:   cfg.wordDiffer,
		clipboard:    cfg.clipboard,
		keymap:       DefaultKeyMap(),
		styles:       styles,
		palette:      palette,
		renderer:     cfg.renderer,
	}

	if diff != nil {
		m.files = make([]fileView, 0, len(diff.Files))
		for _, f := range diff.Files {
			inserted, deleted := f.Stats()
			m.files = append(m.files, fileView{
				path:     f.Path,
				inserted: inserted,
				deleted:  deleted,
				lines:    foldview.Linearize(f.Chunks),
			})
		}
	}
	m.refold()
	return m
}

// foldWidth returns the active context window width.
func (m Model) foldWidth() int {
	if m.compact {
		return foldview.CompactContextLines
	}
	return m.contextWidth
}

// refold recomputes every file's sections and the interactive row layout
// from the current expansion state and window width, then clamps the
// cursor to the new gap list.
func (m *Model) refold() {
	width := m.foldWidth()
	for i := range m.files {
		m.files[i].sections = foldview.Fold(m.files[i].path, m.files[i].lines, width, m.expansion)
	}
	m.filePositions, m.gaps = computeLayout(m.files, m.collapsed)

	switch {
	case len(m.gaps) == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= len(m.gaps):
		m.cursor = len(m.gaps) - 1
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}

		// Check for start of multi-key sequence
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		// Clear pending key on any other key press
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.NextGap):
			m.gotoGap(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevGap):
			m.gotoGap(m.cursor - 1)
			return m, nil
		case key.Matches(msg, m.keymap.NextFile):
			m.gotoFile(1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevFile):
			m.gotoFile(-1)
			return m, nil
		case key.Matches(msg, m.keymap.ToggleGap):
			m.toggleGap()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleFileGaps):
			m.toggleFileGaps()
			return m, nil
		case key.Matches(msg, m.keymap.CollapseFile):
			m.toggleFileCollapse()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleCompact):
			m.toggleCompact()
			return m, nil
		case key.Matches(msg, m.keymap.CopyFile):
			m.copyCurrentFile()
			return m, nil
		}
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.viewport.SetContent(m.renderContent())
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// renderContent renders the folded diff for the viewport.
func (m Model) renderContent() string {
	var cursor foldview.GapKey
	if m.cursor >= 0 && m.cursor < len(m.gaps) {
		cursor = m.gaps[m.cursor].key
	}
	return renderDiff(renderConfig{
		files:      m.files,
		collapsed:  m.collapsed,
		styles:     m.styles,
		renderer:   m.renderer,
		width:      m.width,
		detector:   m.detector,
		tokenizer:  m.tokenizer,
		wordDiffer: m.wordDiffer,
		cursor:     cursor,
	})
}

// gotoGap moves the cursor to gap index i and scrolls its marker row into
// view. Out-of-range targets are ignored.
func (m *Model) gotoGap(i int) {
	if i < 0 || i >= len(m.gaps) {
		return
	}
	m.cursor = i
	m.viewport.SetContent(m.renderContent())
	m.ensureVisible(m.gaps[i].line)
}

// gotoFile scrolls to the next or previous file header.
func (m *Model) gotoFile(dir int) {
	if len(m.filePositions) == 0 {
		return
	}
	current := m.viewport.YOffset
	if dir > 0 {
		for _, pos := range m.filePositions {
			if pos > current {
				m.viewport.SetYOffset(pos)
				return
			}
		}
		return
	}
	for i := len(m.filePositions) - 1; i >= 0; i-- {
		if m.filePositions[i] < current {
			m.viewport.SetYOffset(m.filePositions[i])
			return
		}
	}
	m.viewport.GotoTop()
}

// toggleGap toggles the gap under the cursor between hidden and revealed.
// The cursor stays on the same gap across the re-fold.
func (m *Model) toggleGap() {
	if m.cursor < 0 || m.cursor >= len(m.gaps) {
		return
	}
	key := m.gaps[m.cursor].key
	m.expansion.Toggle(key)
	m.refold()
	m.cursorTo(key)
	m.viewport.SetContent(m.renderContent())
	if m.cursor >= 0 && m.cursor < len(m.gaps) {
		m.ensureVisible(m.gaps[m.cursor].line)
	}
}

// toggleFileGaps expands or collapses every gap in the file under the
// viewport. If half or fewer are currently revealed they all expand,
// otherwise they all collapse.
func (m *Model) toggleFileGaps() {
	fi := m.currentFile()
	if fi < 0 {
		return
	}

	var keys []foldview.GapKey
	for _, section := range m.files[fi].sections {
		if !section.Gap.IsZero() {
			keys = append(keys, section.Gap)
		}
	}
	if len(keys) == 0 {
		return
	}

	expandedCount := 0
	for _, key := range keys {
		if m.expansion.Expanded(key) {
			expandedCount++
		}
	}
	expand := expandedCount <= len(keys)/2

	for _, key := range keys {
		if expand {
			m.expansion.Expand(key)
		} else {
			m.expansion.Collapse(key)
		}
	}
	m.refold()
	m.viewport.SetContent(m.renderContent())
}

// toggleFileCollapse hides or restores the whole file under the viewport,
// leaving only its header summary while hidden.
func (m *Model) toggleFileCollapse() {
	fi := m.currentFile()
	if fi < 0 {
		return
	}
	pos := m.filePositions[fi]
	m.collapsed.Toggle(m.files[fi].path)
	m.refold()
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(pos)
}

// toggleCompact switches between the configured window width and the
// compact width. The expansion state is carried as is: keys folded at the
// other width simply read as collapsed, and they match again when the
// width switches back.
func (m *Model) toggleCompact() {
	m.compact = !m.compact
	m.refold()
	m.viewport.SetContent(m.renderContent())
}

// copyCurrentFile renders the file under the viewport as plain text, with
// the current fold and expansion state, and hands it to the clipboard.
func (m *Model) copyCurrentFile() {
	if m.clipboard == nil || m.diff == nil {
		return
	}
	fi := m.currentFile()
	if fi < 0 || fi >= len(m.diff.Files) {
		return
	}
	formatter := &foldview.TextFormatter{
		ContextLines: m.foldWidth(),
		Collapsed:    m.collapsed,
	}
	// Best-effort copy - errors are silently ignored in UI
	_ = m.clipboard.Copy(formatter.FormatFile(m.diff.Files[fi], m.expansion))
}

// cursorTo moves the cursor to the gap with the given key, if present.
func (m *Model) cursorTo(key foldview.GapKey) {
	for i, g := range m.gaps {
		if g.key == key {
			m.cursor = i
			return
		}
	}
}

// currentFile returns the index of the file under the top of the
// viewport, or -1 when there are no files.
func (m Model) currentFile() int {
	if len(m.filePositions) == 0 {
		return -1
	}
	current := 0
	for i, pos := range m.filePositions {
		if pos <= m.viewport.YOffset {
			current = i
		} else {
			break
		}
	}
	return current
}

// ensureVisible scrolls the viewport just far enough to show the given line.
func (m *Model) ensureVisible(line int) {
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the status bar with position info.
func (m Model) statusBarView() string {
	barStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Foreground))

	dimStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Context))

	sepStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.UIForeground))

	// Format position info
	fileIdx, fileTotal := m.currentPosition(m.filePositions)
	gapIdx, gapTotal := m.cursorPosition()

	fileWidth := digitWidth(fileTotal)
	gapWidth := digitWidth(gapTotal)

	filePos := fmt.Sprintf("file %*d/%-*d", fileWidth, fileIdx, fileWidth, fileTotal)
	gapPos := fmt.Sprintf("gap %*d/%-*d", gapWidth, gapIdx, gapWidth, gapTotal)
	scrollPos := m.scrollPosition()

	// Build status bar with separators
	sep := sepStyle.Render(" │ ")
	content := barStyle.Render(filePos) + sep +
		barStyle.Render(gapPos) + sep

	if m.compact {
		content += barStyle.Render("compact") + sep
	}

	content += barStyle.Render(scrollPos) + sep +
		dimStyle.Render("j/k:scroll  n/N:gap  enter:toggle  w:compact  q:quit") +
		barStyle.Render("  ")

	// Right-align by padding left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}

	return content
}

// currentPosition returns the current position (1-based) and total count.
func (m Model) currentPosition(positions []int) (current, total int) {
	total = len(positions)
	if total == 0 {
		return 0, 0
	}

	currentLine := m.viewport.YOffset
	current = 1

	for i, pos := range positions {
		if pos <= currentLine {
			current = i + 1
		} else {
			break
		}
	}

	return current, total
}

// cursorPosition returns the cursor's gap position (1-based) and the total
// gap count.
func (m Model) cursorPosition() (current, total int) {
	total = len(m.gaps)
	if total == 0 || m.cursor < 0 {
		return 0, total
	}
	return m.cursor + 1, total
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return fmt.Sprintf("%2d%%", percent)
}

// Viewer implements foldview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a Viewer that builds its models with the given theme
// and options.
func NewViewer(theme foldview.Theme, opts ...ModelOption) *Viewer {
	all := make([]ModelOption, 0, len(opts)+1)
	all = append(all, WithTheme(theme))
	all = append(all, opts...)
	return &Viewer{opts: all}
}

// View displays the diff and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, diff *foldview.Diff) error {
	m := NewModel(diff, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
