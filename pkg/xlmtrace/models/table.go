package models

import (
	"github.com/elliotchance/orderedmap/v3"
)

// CellTable maps cell references to records, remembering insertion order.
// A table belongs to exactly one trace run.
type CellTable struct {
	cells *orderedmap.OrderedMap[CellRef, *CellRecord]
}

// NewCellTable returns an empty table.
func NewCellTable() *CellTable {
	return &CellTable{cells: orderedmap.NewOrderedMap[CellRef, *CellRecord]()}
}

// Put creates or replaces the record for ref. A replaced entry keeps its
// original position in the insertion order.
func (t *CellTable) Put(ref CellRef, rec *CellRecord) {
	t.cells.Set(ref, rec)
}

// Get returns the record for ref.
func (t *CellTable) Get(ref CellRef) (*CellRecord, bool) {
	return t.cells.Get(ref)
}

// Len returns the number of cells in the table.
func (t *CellTable) Len() int {
	return t.cells.Len()
}

// Refs returns the references in insertion order.
func (t *CellTable) Refs() []CellRef {
	refs := make([]CellRef, 0, t.cells.Len())
	for ref := range t.cells.Keys() {
		refs = append(refs, ref)
	}
	return refs
}

// FirstWithFormula returns the first reference, in insertion order, whose
// record has a non-empty formula.
func (t *CellTable) FirstWithFormula() (CellRef, bool) {
	for ref, rec := range t.cells.AllFromFront() {
		if rec.HasFormula() {
			return ref, true
		}
	}
	return CellRef{}, false
}

// TextValue returns the decoded string of ref, if the table has one.
func (t *CellTable) TextValue(ref CellRef) (string, bool) {
	rec, ok := t.cells.Get(ref)
	if !ok || rec.TextValue == nil {
		return "", false
	}
	return *rec.TextValue, true
}
