package ttygrid

import (
	"bytes"
	"encoding/json"
	"io"
)

// rowObject encodes a row as a JSON object keyed by header, in column order.
type rowObject struct {
	headers []string
	cells   Row
}

func (o rowObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range o.headers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.cells[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONL(w io.Writer, g *Grid) error {
	headers := g.headers()
	enc := json.NewEncoder(w)
	for _, row := range g.rows {
		if err := enc.Encode(rowObject{headers: headers, cells: row}); err != nil {
			return err
		}
	}
	return nil
}
