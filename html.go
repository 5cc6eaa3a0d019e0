package ttygrid

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, g *Grid) error {
	if len(g.columns) == 0 {
		return nil
	}
	aligns := g.aligns()

	if _, err := fmt.Fprintln(w, "<table>\n  <thead>"); err != nil {
		return err
	}
	if err := writeHTMLRow(w, "th", g.headers(), aligns); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>\n  <tbody>"); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := writeHTMLRow(w, "td", row, aligns); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  </tbody>\n</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(aligns[i]), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
