package ttygrid

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, g *Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.document()); err != nil {
		return err
	}
	return enc.Close()
}
