package ttygrid

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, g *Grid) error {
	if len(g.columns) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(g.headers(), "\t")); err != nil {
		return err
	}
	for _, row := range g.rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
