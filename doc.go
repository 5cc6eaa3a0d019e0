// Package ttygrid renders tables that adapt to the width of the terminal.
//
// Callers declare columns, each with a priority, and add rows. At render time
// the package decides which columns fit, how wide each one is, and how
// overflowing content is cut, then returns aligned, padded, optionally
// colored lines. It never writes to a stream on its own; [Grid.Write] is a
// convenience around [Grid.Lines].
//
// # Building a Grid
//
// A [Builder] collects columns and then rows. Every row must have exactly one
// cell per column:
//
//	b := ttygrid.NewBuilder()
//	_ = b.AddColumn("Name", 1)
//	_ = b.AddColumn("Size", 2)
//	_ = b.AddColumn("Modified", 3)
//	if err := b.AddRow("notes.txt", "4.1K", "2024-03-02"); err != nil {
//		return err
//	}
//	g := b.Build()
//
// [Builder.Build] returns an immutable snapshot which can be rendered any
// number of times, for example on every terminal resize.
//
// # Layout
//
// [ComputeLayout] is a pure function of the width, the columns and the rows.
// Each column's natural width is the widest of its header and cells. Columns
// are taken in priority order (lower first, declaration order on ties) while
// they fit with one space between them. The first column is always taken and
// is clamped to the terminal width if it is too wide on its own. The chosen
// columns are displayed in declaration order.
//
// # Rendering
//
// [Grid.Lines] asks a [Terminal] for its width, computes the layout and
// renders a header line, a rule and one line per row. Content wider than its
// column is cut and ended with [Options.Marker]. Columns are left-aligned
// unless [Column.Align] says otherwise.
//
//	lines, err := g.Lines(ttygrid.NewTerminal(os.Stdout, ttygrid.DefaultTheme()), ttygrid.Options{})
//
// Use [Fixed] to render at a constant width without color.
//
// # Color
//
// When the terminal supports it, every header cell, the rule and every data
// cell is passed through [Terminal.Colorize] with a [Style]. Data rows
// alternate between [StylePrimary] and [StyleSecondary]. Color is applied
// after padding, so it never affects the layout.
//
// # Export
//
// [Grid.Export] writes the full grid, ignoring the terminal, as CSV, TSV,
// Markdown, an HTML table, JSON Lines with one object per row, or a JSON/YAML
// grid document that [Decode] reads back.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrColumnCountMismatch]: a row's cell count differs from the columns
//   - [ErrColumnsFrozen]: a column was added after the first row
//   - [ErrNoSpace]: the terminal is narrower than [MinWidth]
//   - [ErrUnsupportedFormat]: unknown export format
//   - [ErrInvalidDocument]: malformed grid document
package ttygrid
