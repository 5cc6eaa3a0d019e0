package ttygrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrColumnCountMismatch = errors.New("column count mismatch")
	ErrColumnsFrozen       = errors.New("columns are frozen once rows are added")
	ErrNoSpace             = errors.New("terminal is too small")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrInvalidDocument     = errors.New("invalid grid document")
)

// MinWidth is the narrowest terminal a grid can be laid out in: one
// character of one column. Narrower widths fail with [ErrNoSpace].
const MinWidth = 1

// DefaultMarker is appended to truncated cell content.
const DefaultMarker = "…"

// separator joins cells on every rendered line.
const separator = " "

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "left", "center" or "right". The empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" {
		return AlignLeft, nil
	}
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	if _, ok := alignNames[a]; !ok {
		return nil, fmt.Errorf("unknown alignment %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Style names the kind of segment handed to [Terminal.Colorize].
type Style int

const (
	StyleNone Style = iota
	StyleHeader
	StyleDelimiter
	StylePrimary
	StyleSecondary
)
