package ttygrid

import (
	"fmt"
	"io"
)

// Format is a non-adaptive export format. Exports contain every column and
// row regardless of terminal width.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSONL    Format = "jsonl"
)

var formats = []Format{CSV, TSV, JSON, YAML, Markdown, HTML, JSONL}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported export formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses an export format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export writes the whole grid to w in format f.
func (g *Grid) Export(w io.Writer, f Format) error {
	switch f {
	case CSV:
		return writeCSV(w, g)
	case TSV:
		return writeTSV(w, g)
	case JSON:
		return writeJSON(w, g)
	case YAML:
		return writeYAML(w, g)
	case Markdown:
		return writeMarkdown(w, g)
	case HTML:
		return writeHTML(w, g)
	case JSONL:
		return writeJSONL(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
