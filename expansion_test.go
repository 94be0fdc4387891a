package foldview_test

import (
	"testing"

	"github.com/fwojciec/foldview"
	"github.com/stretchr/testify/assert"
)

func TestExpansionState(t *testing.T) {
	t.Parallel()

	key := foldview.GapKey{Path: "main.go", Start: 4, End: 11}

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()

		s := foldview.NewExpansionState()
		assert.False(t, s.Expanded(key))
	})

	t.Run("expand and collapse", func(t *testing.T) {
		t.Parallel()

		s := foldview.NewExpansionState()
		s.Expand(key)
		assert.True(t, s.Expanded(key))

		s.Collapse(key)
		assert.False(t, s.Expanded(key))
	})

	t.Run("toggle flips membership", func(t *testing.T) {
		t.Parallel()

		s := foldview.NewExpansionState()
		s.Toggle(key)
		assert.True(t, s.Expanded(key))
		s.Toggle(key)
		assert.False(t, s.Expanded(key))
	})

	t.Run("collapse of an absent key is a no-op", func(t *testing.T) {
		t.Parallel()

		s := foldview.NewExpansionState()
		s.Collapse(key)
		assert.False(t, s.Expanded(key))
	})

	t.Run("nil state reads as collapsed", func(t *testing.T) {
		t.Parallel()

		var s foldview.ExpansionState
		assert.False(t, s.Expanded(key))
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		other := foldview.GapKey{Path: "main.go", Start: 20, End: 30}
		s := foldview.NewExpansionState()
		s.Expand(key)

		assert.True(t, s.Expanded(key))
		assert.False(t, s.Expanded(other))
	})
}

func TestExpansionState_Prune(t *testing.T) {
	t.Parallel()

	t.Run("drops keys absent from the sections", func(t *testing.T) {
		t.Parallel()

		live := foldview.GapKey{Path: "main.go", Start: 0, End: 7}
		stale := foldview.GapKey{Path: "main.go", Start: 9, End: 14}

		s := foldview.NewExpansionState()
		s.Expand(live)
		s.Expand(stale)

		s.Prune([]foldview.Section{
			{Kind: foldview.SectionContext, Gap: live},
			{Kind: foldview.SectionChange},
		})

		assert.True(t, s.Expanded(live))
		assert.False(t, s.Expanded(stale))
	})

	t.Run("keeps keys carried by expanded sections", func(t *testing.T) {
		t.Parallel()

		key := foldview.GapKey{Path: "main.go", Start: 0, End: 7}
		s := foldview.NewExpansionState()
		s.Expand(key)

		s.Prune([]foldview.Section{
			{Kind: foldview.SectionExpanded, Lines: []foldview.Line{{Text: "x"}}, Gap: key},
		})

		assert.True(t, s.Expanded(key))
	})

	t.Run("empty sections clear the state", func(t *testing.T) {
		t.Parallel()

		s := foldview.NewExpansionState()
		s.Expand(foldview.GapKey{Path: "main.go", Start: 0, End: 7})

		s.Prune(nil)

		assert.Empty(t, s)
	})
}

func TestCollapsedFiles(t *testing.T) {
	t.Parallel()

	t.Run("toggle flips membership", func(t *testing.T) {
		t.Parallel()

		c := foldview.NewCollapsedFiles()
		assert.False(t, c.Collapsed("main.go"))

		c.Toggle("main.go")
		assert.True(t, c.Collapsed("main.go"))

		c.Toggle("main.go")
		assert.False(t, c.Collapsed("main.go"))
	})

	t.Run("nil set reads as visible", func(t *testing.T) {
		t.Parallel()

		var c foldview.CollapsedFiles
		assert.False(t, c.Collapsed("main.go"))
	})

	t.Run("paths are independent", func(t *testing.T) {
		t.Parallel()

		c := foldview.NewCollapsedFiles()
		c.Toggle("a.go")

		assert.True(t, c.Collapsed("a.go"))
		assert.False(t, c.Collapsed("b.go"))
	})
}
