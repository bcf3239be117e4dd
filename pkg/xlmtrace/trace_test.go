package xlmtrace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/xuri/excelize/v2"
)

func TestTraceFileDump(t *testing.T) {
	dump := strings.Join([]string{
		"sample.xls",
		"  3: M     7160 'Macro1'",
		labelLine("Auto_Open", "$A$1"),
		formulaLine("$A$1", "=GOTO($A$5)"),
		formulaLine("$A$5", "=HALT()"),
	}, "\n")
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	tr, err := TraceFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, path, tr.Source)
	assert.Equal(t, "[Auto_Open] =$A$1", tr.Status)
	assert.Equal(t, []string{"=GOTO(A5)", "=HALT()"}, tr.Lines())
	assert.Empty(t, tr.Skipped)
}

func TestTraceFileCustomMarker(t *testing.T) {
	dump := strings.Join([]string{
		"# " + formulaLine("$A$1", "=ECHO(FALSE)"),
		formulaLine("$A$2", "=GOTO($A$1)"),
		"# " + formulaLine("$A$2", "=HALT()"),
	}, "\n")
	path := filepath.Join(t.TempDir(), "marked.txt")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	opts := DefaultOptions()
	opts.Marker = "# "
	tr, err := TraceFile(path, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"=ECHO(FALSE)", "=HALT()"}, tr.Lines())
}

func TestTraceFileWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellFormula("Sheet1", "B2", `CALL("Kernel32","WinExec","JCJ",$B$4,0)`))
	require.NoError(t, f.SetCellFormula("Sheet1", "B3", "HALT()"))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Auto_Open", RefersTo: "Sheet1!$B$2"}))
	require.NoError(t, f.SetSheetDimension("Sheet1", "A1:B3"))
	path := filepath.Join(t.TempDir(), "macro.xlsm")
	require.NoError(t, f.SaveAs(path))

	tr, err := TraceFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[Auto_Open] =$B$2", tr.Status)
	assert.Equal(t, []string{`=CALL("Kernel32","WinExec","JCJ",B4,0)`, "=HALT()"}, tr.Lines())
	assert.Equal(t, models.HaltFormula, tr.Halt)
}

func TestTraceFileErrors(t *testing.T) {
	_, err := TraceFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, os.WriteFile(path, []byte(formulaLine("$A$1", "=HALT()")), 0o644))
	opts := DefaultOptions()
	opts.Encoding = "utf-32"
	_, err = TraceFile(path, opts)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}
