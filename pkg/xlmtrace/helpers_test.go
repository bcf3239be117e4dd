package xlmtrace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

func formulaLine(ref, formula string) string {
	return fmt.Sprintf(`'0006     27 FORMULA : Cell Formula - R1C1 [%s len=%d] [[ "%s" ]]`, ref, len(formula), formula)
}

func stringLine(value string) string {
	return fmt.Sprintf(`'0207     10 STRING : String Value [[ "%s" ]]`, value)
}

func labelLine(name, ref string) string {
	return fmt.Sprintf(`'0018     23 LABEL : Cell Value, String Constant - Builtin - %s [[ "=%s" ]]`, name, ref)
}

// mustTrace traces lines with opts and fails the test on error.
func mustTrace(t *testing.T, opts Options, lines ...string) *models.Trace {
	t.Helper()
	tr, err := TraceLines(lines, opts)
	require.NoError(t, err)
	return tr
}

func withBudget(n int) Options {
	opts := DefaultOptions()
	opts.EmptyCellBudget = n
	return opts
}
