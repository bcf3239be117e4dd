package xlmtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

func TestAdvanceNeverRepeats(t *testing.T) {
	st := NewState(nil, DefaultEmptyCellBudget)
	a1 := models.CellRef{Col: "A", Row: 1}

	got := []models.CellRef{
		st.Advance(a1),
		st.Advance(a1),
		st.Advance(models.CellRef{Col: "A", Row: 2}),
		st.Advance(models.CellRef{Col: "B", Row: 1}),
		st.Advance(a1),
	}

	assert.Equal(t, []models.CellRef{
		{Col: "A", Row: 2},
		{Col: "A", Row: 3},
		{Col: "A", Row: 4},
		{Col: "B", Row: 2},
		{Col: "A", Row: 5},
	}, got)
	assert.Equal(t, len(got), st.SkipTargets.Len())
}

func TestStateSpend(t *testing.T) {
	st := NewState(nil, 2)
	assert.True(t, st.spend())
	assert.True(t, st.spend())
	assert.False(t, st.spend())
	assert.Equal(t, 0, st.Budget)
}

func TestStateLand(t *testing.T) {
	st := NewState(nil, 1)
	ref := models.CellRef{Col: "A", Row: 9}
	assert.True(t, st.land(ref))
	assert.False(t, st.land(ref))
}
