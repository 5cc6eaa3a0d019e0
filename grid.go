package ttygrid

import (
	"fmt"
	"slices"
)

// Column declares one grid column.
type Column struct {
	// Header is the display label.
	Header string
	// Priority decides which columns survive when space is scarce. Lower
	// values are kept first; ties go to the earlier declared column.
	Priority int
	// Align sets how cell content is padded. Default: AlignLeft.
	Align Alignment

	index int
}

// Index returns the column's declaration position within its grid.
func (c Column) Index() int { return c.index }

// Row is one line of cell text, ordered like the grid's columns.
type Row []string

// Builder accumulates columns and rows. Columns must all be declared before
// the first row is added.
type Builder struct {
	columns []Column
	rows    []Row
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddColumn declares a left-aligned column.
func (b *Builder) AddColumn(header string, priority int) error {
	return b.AddColumnSpec(Column{Header: header, Priority: priority})
}

// AddColumnSpec declares a column. Its index is assigned by the builder; any
// index already set on c is ignored.
func (b *Builder) AddColumnSpec(c Column) error {
	if len(b.rows) > 0 {
		return fmt.Errorf("%w: cannot add column %q after %d rows", ErrColumnsFrozen, c.Header, len(b.rows))
	}
	c.index = len(b.columns)
	b.columns = append(b.columns, c)
	return nil
}

// AddRow appends a row. The number of cells must equal the number of
// declared columns; otherwise the row is rejected and the builder is left
// unchanged.
func (b *Builder) AddRow(cells ...string) error {
	if len(cells) != len(b.columns) {
		return fmt.Errorf("%w: row has %d cells, grid declares %d columns", ErrColumnCountMismatch, len(cells), len(b.columns))
	}
	b.rows = append(b.rows, Row(slices.Clone(cells)))
	return nil
}

// Build returns an immutable snapshot of the builder's columns and rows.
// Later builder calls do not affect the returned grid.
func (b *Builder) Build() *Grid {
	rows := make([]Row, len(b.rows))
	for i, r := range b.rows {
		rows[i] = slices.Clone(r)
	}
	return &Grid{columns: slices.Clone(b.columns), rows: rows}
}

// Grid is a built, read-only table. It is safe to render concurrently and
// repeatedly.
type Grid struct {
	columns []Column
	rows    []Row
}

// Columns returns a copy of the grid's columns in declaration order.
func (g *Grid) Columns() []Column { return slices.Clone(g.columns) }

// Rows returns a copy of the grid's rows.
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	for i, r := range g.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// NumColumns returns the number of declared columns.
func (g *Grid) NumColumns() int { return len(g.columns) }

// NumRows returns the number of rows.
func (g *Grid) NumRows() int { return len(g.rows) }

// Layout computes the grid's layout for the given width. See [ComputeLayout].
func (g *Grid) Layout(available int) (*Layout, error) {
	return ComputeLayout(available, g.columns, g.rows)
}

func (g *Grid) headers() []string { return headersOf(g.columns) }

func headersOf(columns []Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

func (g *Grid) aligns() []Alignment {
	out := make([]Alignment, len(g.columns))
	for i, c := range g.columns {
		out[i] = c.Align
	}
	return out
}
