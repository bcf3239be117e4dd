package xlmtrace

import (
	"fmt"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

// Status lines for runs without an auto-exec hint.
const (
	StatusFirstFormula = "No auto-executable cell found. Using first Formula as entry-point."
	StatusNoEntryPoint = "No auto-executable cell found and no Formula cell to start from."
)

// ResolveEntry picks the cell where tracing begins and the status line that
// explains the choice. A manual override wins over the auto-exec hint, which
// wins over the first formula cell in table order. The hint is used even if
// the table has no entry for it.
func ResolveEntry(table *models.CellTable, hint *models.AutoExec, override string) (*models.CellRef, string, error) {
	if override != "" {
		ref, err := parser.ParseRef(override)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidEntryPoint, err)
		}
		return &ref, fmt.Sprintf("[Manual] =%s", ref), nil
	}
	if hint != nil {
		ref := hint.Ref
		return &ref, fmt.Sprintf("[%s] =%s", hint.Name, ref), nil
	}
	if ref, ok := table.FirstWithFormula(); ok {
		return &ref, StatusFirstFormula, nil
	}
	return nil, StatusNoEntryPoint, nil
}
