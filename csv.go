package ttygrid

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, g *Grid) error {
	if len(g.columns) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(g.headers()); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
