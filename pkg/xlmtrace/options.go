// Package xlmtrace reconstructs the probable execution order of Excel 4.0
// (XLM) macro cells from a BIFF record dump.
package xlmtrace

import (
	"log/slog"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

// Mode represents the display mode of trace lines.
type Mode string

const (
	// ModeStandard prints formulas as dumped, minus delimiters and spaces.
	ModeStandard Mode = "standard"
	// ModeShowFormula additionally rewrites FORMULA(expr,ref) to =expr.
	ModeShowFormula Mode = "show-formula"
)

// DefaultEmptyCellBudget is the number of empty-cell skips tolerated per run.
const DefaultEmptyCellBudget = 10

// Options configures trace behavior.
type Options struct {
	// Mode specifies the display mode (standard, show-formula).
	Mode Mode
	// EmptyCellBudget bounds the empty-cell skips of a run.
	// Zero or negative means DefaultEmptyCellBudget.
	EmptyCellBudget int
	// EntryPoint overrides the auto-exec hint when set (e.g. "$A$1").
	EntryPoint string
	// Encoding of text dumps: utf-8 (default), latin1 or cp1252.
	Encoding string
	// Marker is the prefix of relevant dump lines.
	// If empty, defaults to parser.DefaultMarker.
	Marker string
	// Sheet restricts workbook input to one sheet. Empty means all sheets.
	Sheet string
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default trace options.
func DefaultOptions() Options {
	return Options{
		Mode:            ModeStandard,
		EmptyCellBudget: DefaultEmptyCellBudget,
		Marker:          parser.DefaultMarker,
	}
}

// ShowFormula reports whether FORMULA wrappers are simplified for display.
func (o Options) ShowFormula() bool {
	return o.Mode == ModeShowFormula
}

// Budget returns the effective empty-cell budget.
func (o Options) Budget() int {
	if o.EmptyCellBudget > 0 {
		return o.EmptyCellBudget
	}
	return DefaultEmptyCellBudget
}

func (o Options) marker() string {
	if o.Marker != "" {
		return o.Marker
	}
	return parser.DefaultMarker
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
