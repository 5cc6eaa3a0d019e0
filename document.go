package ttygrid

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the serialized form of a grid used by the JSON and YAML
// exports and by Decode.
type document struct {
	Columns []columnDocument `json:"columns" yaml:"columns"`
	Rows    [][]string       `json:"rows" yaml:"rows"`
}

type columnDocument struct {
	Header   string    `json:"header" yaml:"header"`
	Priority int       `json:"priority" yaml:"priority"`
	Align    Alignment `json:"align" yaml:"align"`
}

func (g *Grid) document() document {
	doc := document{
		Columns: make([]columnDocument, len(g.columns)),
		Rows:    make([][]string, len(g.rows)),
	}
	for i, c := range g.columns {
		doc.Columns[i] = columnDocument{Header: c.Header, Priority: c.Priority, Align: c.Align}
	}
	for i, row := range g.rows {
		doc.Rows[i] = row
	}
	return doc
}

// Decode reads a grid document in YAML or JSON:
//
//	columns:
//	  - header: Name
//	    priority: 1
//	  - header: Size
//	    priority: 2
//	    align: right
//	rows:
//	  - [a.txt, "12"]
//
// Rows are added through a [Builder], so a row of the wrong length fails with
// [ErrColumnCountMismatch]. Any other malformed input fails with
// [ErrInvalidDocument].
func Decode(r io.Reader) (*Grid, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidDocument)
	}

	b := NewBuilder()
	for _, c := range doc.Columns {
		if err := b.AddColumnSpec(Column{Header: c.Header, Priority: c.Priority, Align: c.Align}); err != nil {
			return nil, err
		}
	}
	for i, row := range doc.Rows {
		if err := b.AddRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return b.Build(), nil
}
