// Package parser provides dump-line, cell reference and formula parsing.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/xuri/excelize/v2"
)

// ParseRef parses a cell reference such as "$A$1", "~A~1" or "A1".
// An optional sheet qualifier ("Macro1!$A$1") is dropped.
func ParseRef(s string) (models.CellRef, error) {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.ReplaceAll(s, "~", "$")

	col, row, err := excelize.SplitCellName(s)
	if err != nil {
		return models.CellRef{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}
	if _, err := excelize.ColumnNameToNumber(col); err != nil {
		return models.CellRef{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}
	return models.CellRef{Col: strings.ToUpper(col), Row: row}, nil
}
