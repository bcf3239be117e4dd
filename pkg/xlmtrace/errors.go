package xlmtrace

import (
	"errors"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidEntryPoint indicates Options.EntryPoint is not a cell reference.
var ErrInvalidEntryPoint = errors.New("invalid entry point")

// ErrUnsupportedEncoding indicates an unknown Options.Encoding.
var ErrUnsupportedEncoding = parser.ErrUnsupportedEncoding

// ErrInvalidMode indicates an unknown Options.Mode.
var ErrInvalidMode = errors.New("invalid mode")
