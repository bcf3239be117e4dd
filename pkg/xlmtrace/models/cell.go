// Package models defines data structures for macro trace reconstruction.
package models

import "strconv"

// CellRef identifies a cell by column letters and 1-based row.
type CellRef struct {
	// Col is the upper-case column name (e.g. "A", "AK").
	Col string `json:"col"`
	// Row is the row number (1-based).
	Row int `json:"row"`
}

// String returns the absolute form used by the dump format, e.g. "$A$1".
func (r CellRef) String() string {
	return "$" + r.Col + "$" + strconv.Itoa(r.Row)
}

// Below returns the reference one row down in the same column.
func (r CellRef) Below() CellRef {
	return CellRef{Col: r.Col, Row: r.Row + 1}
}

// CellRecord holds what the dump tells us about one cell.
type CellRecord struct {
	// Formula is the raw formula text as dumped (nil if the cell has none).
	Formula *string `json:"formula,omitempty"`
	// TextValue is the decoded string carried by the cell (nil if none).
	TextValue *string `json:"text_value,omitempty"`
}

// HasFormula reports whether the record carries a non-empty formula.
func (c *CellRecord) HasFormula() bool {
	return c != nil && c.Formula != nil && *c.Formula != ""
}

// AutoExec is the entry-point hint declared by a builtin auto-execute label.
type AutoExec struct {
	// Name is the builtin label name (e.g. "Auto_Open").
	Name string `json:"name"`
	// Ref is the cell the label points to.
	Ref CellRef `json:"ref"`
}
