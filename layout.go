package ttygrid

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// LayoutColumn is a column selected for display and the width it received.
type LayoutColumn struct {
	Column Column
	// Index is the column's position in the declared column list.
	Index int
	// Natural is the width needed to show the header and every cell in full.
	Natural int
	// Width is the assigned width. It equals Natural unless the column had to
	// be clamped to fit the terminal on its own.
	Width int
}

// Truncated reports whether the column is narrower than its content.
func (c LayoutColumn) Truncated() bool { return c.Width < c.Natural }

// Layout is the result of fitting a grid into a terminal width. Columns are
// in declaration order.
type Layout struct {
	Available int
	Columns   []LayoutColumn
}

// TotalWidth returns the width of a rendered line: assigned widths plus one
// separator between adjacent columns.
func (l *Layout) TotalWidth() int {
	if len(l.Columns) == 0 {
		return 0
	}
	n := len(l.Columns) - 1
	for _, c := range l.Columns {
		n += c.Width
	}
	return n
}

// Headers returns the headers of the selected columns in display order.
func (l *Layout) Headers() []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Column.Header
	}
	return out
}

// Dropped returns the columns from the declared list that were not selected,
// in declaration order.
func (l *Layout) Dropped(columns []Column) []Column {
	selected := make([]bool, len(columns))
	for _, c := range l.Columns {
		if c.Index < len(selected) {
			selected[c.Index] = true
		}
	}
	var out []Column
	for i, c := range columns {
		if !selected[i] {
			out = append(out, c)
		}
	}
	return out
}

// ComputeLayout selects the columns that fit in available terminal columns
// and assigns their widths.
//
// Columns are considered in priority order (lower Priority first, ties broken
// by declaration order) and taken while their natural widths plus one
// separator between each pair still fit. Selection stops at the first column
// that does not fit, so widening the terminal never drops a column. The first
// column is always taken and is clamped to available when it is wider on its
// own. Selected columns are returned in declaration order. Spare width is not
// handed out.
//
// Rows are indexed by column position; a row shorter than columns is treated
// as having empty trailing cells. ComputeLayout fails only with [ErrNoSpace].
func ComputeLayout(available int, columns []Column, rows []Row) (*Layout, error) {
	if available < MinWidth {
		return nil, fmt.Errorf("%w: %d columns available, need at least %d", ErrNoSpace, available, MinWidth)
	}
	layout := &Layout{Available: available}
	if len(columns) == 0 {
		return layout, nil
	}

	natural := naturalWidths(columns, rows)

	order := make([]int, len(columns))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(cmp.Compare(columns[a].Priority, columns[b].Priority), cmp.Compare(a, b))
	})

	var picked []LayoutColumn
	used := 0
	for _, idx := range order {
		need := natural[idx]
		if len(picked) > 0 {
			need += len(separator)
		}
		if used+need > available {
			if len(picked) == 0 {
				picked = append(picked, LayoutColumn{Column: columns[idx], Index: idx, Natural: natural[idx], Width: available})
			}
			break
		}
		used += need
		picked = append(picked, LayoutColumn{Column: columns[idx], Index: idx, Natural: natural[idx], Width: natural[idx]})
	}

	slices.SortFunc(picked, func(a, b LayoutColumn) int { return a.Index - b.Index })
	layout.Columns = picked
	return layout, nil
}

func naturalWidths(columns []Column, rows []Row) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = max(runewidth.StringWidth(cellText(c.Header)), 1)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cellText(cell)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// cellText makes s safe to measure and print on one terminal line. Tabs and
// line breaks become spaces and other control characters are dropped.
func cellText(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}
