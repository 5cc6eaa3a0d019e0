package ttygrid

// Terminal is what the renderer needs to know about its output device.
// Implementations are queried on every render and are never cached.
type Terminal interface {
	// Width returns the current number of columns.
	Width() int
	// SupportsColor reports whether Colorize output will be understood.
	SupportsColor() bool
	// Colorize wraps text in the escape codes for style. The returned string
	// must have the same display width as text.
	Colorize(text string, s Style) string
}

// Fixed is a [Terminal] of constant width that never colors. Use it for tests
// or when rendering to something other than a terminal.
type Fixed struct {
	Cols int
}

var _ Terminal = Fixed{}

// Width returns f.Cols.
func (f Fixed) Width() int { return f.Cols }

// SupportsColor returns false.
func (Fixed) SupportsColor() bool { return false }

// Colorize returns text unchanged.
func (Fixed) Colorize(text string, _ Style) string { return text }
