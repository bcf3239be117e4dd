package parser

import (
	"errors"
	"fmt"
)

// Line-level extraction failures. They are wrapped in *LineError.
var (
	ErrNoCellID     = errors.New("no cell identity token")
	ErrNoValue      = errors.New("no value field")
	ErrNoBuiltin    = errors.New("no builtin name")
	ErrOrphanString = errors.New("string record without a preceding formula record")
	ErrInvalidRef   = errors.New("invalid cell reference")
)

// ErrUnsupportedEncoding indicates an unknown dump file encoding name.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// LineError records why a single dump line was skipped.
type LineError struct {
	Line   int    // 1-based position in the scanned sequence
	Marker string // "LABEL", "FORMULA" or "STRING"
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Marker, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
