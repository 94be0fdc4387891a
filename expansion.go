package foldview

// ExpansionState is the caller-owned set of gaps the user has chosen to
// reveal. Fold only reads it; toggling membership and re-folding is the
// caller's responsibility. A key that no fresh fold produces simply never
// matches, so stale entries read as collapsed rather than erroring.
type ExpansionState map[GapKey]bool

// NewExpansionState returns an empty expansion state.
func NewExpansionState() ExpansionState {
	return make(ExpansionState)
}

// Expanded reports whether key is in the set. Safe on a nil state.
func (s ExpansionState) Expanded(key GapKey) bool {
	return s[key]
}

// Expand adds key to the set.
func (s ExpansionState) Expand(key GapKey) {
	s[key] = true
}

// Collapse removes key from the set.
func (s ExpansionState) Collapse(key GapKey) {
	delete(s, key)
}

// Toggle flips key's membership in the set.
func (s ExpansionState) Toggle(key GapKey) {
	if s[key] {
		delete(s, key)
	} else {
		s[key] = true
	}
}

// Prune removes entries whose gaps no longer appear in sections, so state
// held across re-folds does not accumulate keys for gaps that shifted or
// disappeared when the underlying chunks changed.
func (s ExpansionState) Prune(sections []Section) {
	live := make(map[GapKey]bool, len(sections))
	for _, sec := range sections {
		if !sec.Gap.IsZero() {
			live[sec.Gap] = true
		}
	}
	for key := range s {
		if !live[key] {
			delete(s, key)
		}
	}
}

// CollapsedFiles is the caller-owned set of file paths whose whole diff is
// hidden in the view. It feeds header summaries only and is never consulted
// by Fold.
type CollapsedFiles map[string]bool

// NewCollapsedFiles returns an empty collapsed-file set.
func NewCollapsedFiles() CollapsedFiles {
	return make(CollapsedFiles)
}

// Collapsed reports whether path is in the set. Safe on a nil set.
func (c CollapsedFiles) Collapsed(path string) bool {
	return c[path]
}

// Toggle flips path's membership in the set.
func (c CollapsedFiles) Toggle(path string) {
	if c[path] {
		delete(c, path)
	} else {
		c[path] = true
	}
}
