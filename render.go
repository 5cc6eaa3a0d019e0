package ttygrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"
)

// Options controls rendering. The zero value renders with [DefaultMarker],
// a rule line, color when the terminal supports it, and no logging.
type Options struct {
	// Marker is appended to truncated cells. Empty means DefaultMarker.
	Marker string
	// NoColor disables color even when the terminal supports it.
	NoColor bool
	// NoRule omits the line between the header and the rows.
	NoRule bool
	// Logger receives layout decisions at V(1).
	Logger logr.Logger
}

func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}

// Lines lays the grid out for the terminal's current width and renders it.
// The width is read once per call. On error no lines are returned.
func (g *Grid) Lines(term Terminal, opts Options) ([]string, error) {
	width := term.Width()
	layout, err := ComputeLayout(width, g.columns, g.rows)
	if err != nil {
		return nil, err
	}
	opts.Logger.V(1).Info("layout computed",
		"available", width,
		"selected", layout.Headers(),
		"dropped", headersOf(layout.Dropped(g.columns)),
		"totalWidth", layout.TotalWidth(),
	)
	return Render(term, layout, g.rows, opts), nil
}

// Write renders the grid and writes each line to w.
func (g *Grid) Write(w io.Writer, term Terminal, opts Options) error {
	lines, err := g.Lines(term, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Render turns a layout into text lines: the header, a rule, then one line
// per row. Cells are truncated and padded to their column's width before any
// color is applied, so escape codes never change the visible width.
// A nil or empty layout renders no lines.
func Render(term Terminal, layout *Layout, rows []Row, opts Options) []string {
	if layout == nil || len(layout.Columns) == 0 {
		return nil
	}
	r := renderer{term: term, marker: opts.marker(), color: !opts.NoColor && term.SupportsColor()}

	lines := make([]string, 0, len(rows)+2)
	headers := layout.Headers()
	lines = append(lines, r.line(layout, func(i int) string { return headers[i] }, StyleHeader))
	if !opts.NoRule {
		lines = append(lines, r.paint(strings.Repeat("-", layout.TotalWidth()), StyleDelimiter))
	}
	for n, row := range rows {
		style := StylePrimary
		if n%2 == 1 {
			style = StyleSecondary
		}
		lines = append(lines, r.line(layout, func(i int) string {
			idx := layout.Columns[i].Index
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}, style))
	}
	return lines
}

type renderer struct {
	term   Terminal
	marker string
	color  bool
}

func (r renderer) line(layout *Layout, cell func(int) string, style Style) string {
	parts := make([]string, len(layout.Columns))
	for i, c := range layout.Columns {
		parts[i] = r.paint(formatCell(cell(i), c.Width, c.Column.Align, r.marker), style)
	}
	return strings.Join(parts, separator)
}

func (r renderer) paint(s string, style Style) string {
	if !r.color {
		return s
	}
	return r.term.Colorize(s, style)
}

func formatCell(s string, width int, align Alignment, marker string) string {
	return alignCell(truncate(cellText(s), width, marker), width, align)
}

// truncate cuts s to width display columns. The marker is used only when
// width is wider than the marker itself; otherwise s is hard-cut.
func truncate(s string, width int, marker string) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(marker) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, marker)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
