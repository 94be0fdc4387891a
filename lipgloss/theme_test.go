package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/foldview"
	"github.com/fwojciec/foldview/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ foldview.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns styles with inserted line coloring", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DefaultTheme()
		styles := theme.Styles()

		assert.NotEmpty(t, styles.Inserted.Foreground)
	})

	t.Run("returns styles with deleted line coloring", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DefaultTheme()
		styles := theme.Styles()

		assert.NotEmpty(t, styles.Deleted.Foreground)
	})

	t.Run("returns styles with context line coloring", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DefaultTheme()
		styles := theme.Styles()

		assert.NotEmpty(t, styles.Context.Foreground)
	})

	t.Run("returns styles with gap marker coloring", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DefaultTheme()
		styles := theme.Styles()

		assert.NotEmpty(t, styles.GapMarker.Foreground)
	})

	t.Run("returns styles with file header coloring", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DefaultTheme()
		styles := theme.Styles()

		assert.NotEmpty(t, styles.FileHeader.Foreground)
	})

	t.Run("returns same styles as DarkTheme", func(t *testing.T) {
		t.Parallel()

		defaultStyles := lipgloss.DefaultTheme().Styles()
		darkStyles := lipgloss.DarkTheme().Styles()

		assert.Equal(t, darkStyles, defaultStyles)
	})
}

func TestDarkTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ foldview.Theme = lipgloss.DarkTheme()
	})

	t.Run("returns styles optimized for dark backgrounds", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.DarkTheme()
		styles := theme.Styles()

		// Dark theme should have all required styles
		assert.NotEmpty(t, styles.Inserted.Foreground)
		assert.NotEmpty(t, styles.Deleted.Foreground)
		assert.NotEmpty(t, styles.Context.Foreground)
		assert.NotEmpty(t, styles.GapMarker.Foreground)
		assert.NotEmpty(t, styles.FileHeader.Foreground)
		assert.NotEmpty(t, styles.InsertedGutter.Foreground)
		assert.NotEmpty(t, styles.DeletedGutter.Foreground)
	})

	t.Run("palette covers syntax colors", func(t *testing.T) {
		t.Parallel()

		palette := lipgloss.DarkTheme().Palette()

		assert.NotEmpty(t, palette.Keyword)
		assert.NotEmpty(t, palette.String)
		assert.NotEmpty(t, palette.Number)
		assert.NotEmpty(t, palette.Comment)
		assert.NotEmpty(t, palette.Function)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ foldview.Theme = lipgloss.LightTheme()
	})

	t.Run("returns styles optimized for light backgrounds", func(t *testing.T) {
		t.Parallel()

		theme := lipgloss.LightTheme()
		styles := theme.Styles()

		// Light theme should have all required styles
		assert.NotEmpty(t, styles.Inserted.Foreground)
		assert.NotEmpty(t, styles.Deleted.Foreground)
		assert.NotEmpty(t, styles.Context.Foreground)
		assert.NotEmpty(t, styles.GapMarker.Foreground)
		assert.NotEmpty(t, styles.FileHeader.Foreground)
	})

	t.Run("differs from the dark theme", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, lipgloss.DarkTheme().Palette(), lipgloss.LightTheme().Palette())
	})
}
