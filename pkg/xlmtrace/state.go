package xlmtrace

import (
	"github.com/elliotchance/orderedmap/v3"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

// State is the mutable state of one trace run. Every run gets its own.
type State struct {
	// Current is the cell to examine next, nil once nothing is left.
	Current *models.CellRef
	// SkipTargets holds every cell handed out by Advance, in order.
	SkipTargets *orderedmap.OrderedMap[models.CellRef, struct{}]
	// Budget is what remains of the empty-cell budget.
	Budget int
	// Halted is set once the run reached a terminal condition.
	Halted bool
	// Reason is the terminal condition, empty while running.
	Reason models.HaltReason

	landings map[models.CellRef]struct{}
}

// NewState returns the initial state of a run starting at entry.
func NewState(entry *models.CellRef, budget int) *State {
	return &State{
		Current:     entry,
		SkipTargets: orderedmap.NewOrderedMap[models.CellRef, struct{}](),
		Budget:      budget,
		landings:    make(map[models.CellRef]struct{}),
	}
}

// Advance returns the first cell below from, in the same column, that this
// run has not been handed before, and records it. Rows only grow, so the
// search always ends.
func (s *State) Advance(from models.CellRef) models.CellRef {
	next := from.Below()
	for s.SkipTargets.Has(next) {
		next = next.Below()
	}
	s.SkipTargets.Set(next, struct{}{})
	return next
}

// land records a jump landing and reports whether it is the first one on ref.
func (s *State) land(ref models.CellRef) bool {
	if _, seen := s.landings[ref]; seen {
		return false
	}
	s.landings[ref] = struct{}{}
	return true
}

// spend consumes one unit of budget. It reports false when none is left.
func (s *State) spend() bool {
	if s.Budget <= 0 {
		return false
	}
	s.Budget--
	return true
}

func (s *State) halt(reason models.HaltReason) {
	s.Halted = true
	s.Reason = reason
}
