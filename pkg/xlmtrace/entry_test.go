package xlmtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

func TestResolveEntry(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		override   string
		wantEntry  string
		wantStatus string
	}{
		{
			name:       "auto-exec hint",
			lines:      []string{formulaLine("$A$1", "=HALT()"), labelLine("Auto_Open", "$B$3")},
			wantEntry:  "$B$3",
			wantStatus: "[Auto_Open] =$B$3",
		},
		{
			name: "last label wins",
			lines: []string{
				labelLine("Auto_Open", "$A$1"),
				labelLine("Auto_Close", "$B$1"),
				formulaLine("$A$1", "=HALT()"),
			},
			wantEntry:  "$B$1",
			wantStatus: "[Auto_Close] =$B$1",
		},
		{
			name:       "first formula-bearing cell",
			lines:      []string{formulaLine("$A$1", ""), formulaLine("$C$7", "=HALT()"), formulaLine("$A$2", "=HALT()")},
			wantEntry:  "$C$7",
			wantStatus: StatusFirstFormula,
		},
		{
			name:       "manual override beats hint",
			lines:      []string{labelLine("Auto_Open", "$A$1")},
			override:   "~D~4",
			wantEntry:  "$D$4",
			wantStatus: "[Manual] =$D$4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := parser.BuildTable(tt.lines)
			entry, status, err := ResolveEntry(built.Table, built.AutoExec, tt.override)
			require.NoError(t, err)
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantEntry, entry.String())
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestResolveEntryNone(t *testing.T) {
	entry, status, err := ResolveEntry(models.NewCellTable(), nil, "")
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, StatusNoEntryPoint, status)
}

func TestResolveEntryInvalidOverride(t *testing.T) {
	_, _, err := ResolveEntry(models.NewCellTable(), nil, "nowhere")
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}
