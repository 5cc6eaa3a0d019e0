package ttygrid

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be detected.
const DefaultWidth = 80

// Theme maps segment styles to color attributes. Styles missing from the
// theme are left uncolored.
type Theme map[Style][]color.Attribute

// DefaultTheme returns the stock palette: cyan headers and rule, and rows
// alternating between bright and normal white.
func DefaultTheme() Theme {
	return Theme{
		StyleHeader:    {color.FgCyan},
		StyleDelimiter: {color.FgHiCyan},
		StylePrimary:   {color.FgHiWhite},
		StyleSecondary: {color.FgWhite},
	}
}

// Term is a [Terminal] backed by an open file, usually os.Stdout.
type Term struct {
	f      *os.File
	colors map[Style]*color.Color
	force  *bool
}

var _ Terminal = (*Term)(nil)

// NewTerminal returns a Term writing to f and coloring with theme. A nil
// theme disables coloring of every style.
func NewTerminal(f *os.File, theme Theme) *Term {
	colors := make(map[Style]*color.Color, len(theme))
	for style, attrs := range theme {
		c := color.New(attrs...)
		c.EnableColor()
		colors[style] = c
	}
	return &Term{f: f, colors: colors}
}

// SetColor overrides color detection.
func (t *Term) SetColor(enabled bool) {
	t.force = &enabled
}

// Width returns the terminal's column count. When f is not a terminal it
// falls back to $COLUMNS, then to DefaultWidth.
func (t *Term) Width() int {
	if w, _, err := term.GetSize(int(t.f.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// SupportsColor reports whether f is a terminal, NO_COLOR is unset and TERM
// is not "dumb", unless overridden by SetColor.
func (t *Term) SupportsColor() bool {
	if t.force != nil {
		return *t.force
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := t.f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorize wraps text in the theme's escape codes for s.
func (t *Term) Colorize(text string, s Style) string {
	c, ok := t.colors[s]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
