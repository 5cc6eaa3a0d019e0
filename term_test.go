package ttygrid_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/ttygrid"
)

// notTTY returns a regular file, which is never a terminal.
func notTTY(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// pinned fixes the width of a real terminal so output does not depend on the
// environment running the tests.
type pinned struct {
	*ttygrid.Term
	cols int
}

func (p pinned) Width() int { return p.cols }

func TestTermWidthFallsBackToColumns(t *testing.T) {
	t.Setenv("COLUMNS", "123")
	term := ttygrid.NewTerminal(notTTY(t), nil)
	assert.Equal(t, 123, term.Width())
}

func TestTermWidthDefault(t *testing.T) {
	tests := map[string]struct {
		columns string
	}{
		"unset":   {columns: ""},
		"garbage": {columns: "wide"},
		"zero":    {columns: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			term := ttygrid.NewTerminal(notTTY(t), nil)
			assert.Equal(t, ttygrid.DefaultWidth, term.Width())
		})
	}
}

func TestTermSupportsColor(t *testing.T) {
	t.Parallel()
	term := ttygrid.NewTerminal(notTTY(t), ttygrid.DefaultTheme())
	assert.False(t, term.SupportsColor())

	term.SetColor(true)
	assert.True(t, term.SupportsColor())

	term.SetColor(false)
	assert.False(t, term.SupportsColor())
}

func TestTermColorize(t *testing.T) {
	t.Parallel()
	term := ttygrid.NewTerminal(notTTY(t), ttygrid.Theme{
		ttygrid.StyleHeader: {color.FgCyan},
	})

	out := term.Colorize("hi", ttygrid.StyleHeader)
	assert.True(t, strings.HasPrefix(out, "\x1b[36m"), "%q", out)
	assert.Contains(t, out, "hi")

	assert.Equal(t, "hi", term.Colorize("hi", ttygrid.StyleNone))
	assert.Equal(t, "hi", term.Colorize("hi", ttygrid.StylePrimary))
}

func TestTermRendersColor(t *testing.T) {
	t.Parallel()
	g := buildGrid(t, []column{{"Name", 1}}, []string{"a"}, []string{"b"})
	term := ttygrid.NewTerminal(notTTY(t), ttygrid.DefaultTheme())
	term.SetColor(true)

	plain, err := g.Lines(ttygrid.Fixed{Cols: 20}, ttygrid.Options{})
	require.NoError(t, err)
	colored, err := g.Lines(pinned{Term: term, cols: 20}, ttygrid.Options{})
	require.NoError(t, err)

	require.Len(t, colored, len(plain))
	for i := range plain {
		assert.NotEqual(t, plain[i], colored[i])
		assert.Contains(t, colored[i], plain[i])
	}
}

func TestDefaultThemeCoversStyles(t *testing.T) {
	t.Parallel()
	theme := ttygrid.DefaultTheme()
	for _, s := range []ttygrid.Style{ttygrid.StyleHeader, ttygrid.StyleDelimiter, ttygrid.StylePrimary, ttygrid.StyleSecondary} {
		assert.NotEmpty(t, theme[s], "style %d", s)
	}
	assert.NotContains(t, theme, ttygrid.StyleNone)
}

func TestFixed(t *testing.T) {
	t.Parallel()
	term := ttygrid.Fixed{Cols: 42}
	assert.Equal(t, 42, term.Width())
	assert.False(t, term.SupportsColor())
	assert.Equal(t, "x", term.Colorize("x", ttygrid.StyleHeader))
}
