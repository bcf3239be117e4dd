package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace"
)

func TestParse_AllBlocks(t *testing.T) {
	src := `
trace {
  mode              = "show-formula"
  empty_cell_budget = 25
  entry_point       = "$B$3"
}
input {
  encoding = "cp1252"
  sheet    = "Macro1"
}
log {
  level  = "debug"
  format = "json"
}
`
	f, err := Parse([]byte(src), "xlmtrace.hcl")
	require.NoError(t, err)

	opts := f.Apply(xlmtrace.DefaultOptions())
	assert.Equal(t, xlmtrace.ModeShowFormula, opts.Mode)
	assert.Equal(t, 25, opts.EmptyCellBudget)
	assert.Equal(t, "$B$3", opts.EntryPoint)
	assert.Equal(t, "cp1252", opts.Encoding)
	assert.Equal(t, "Macro1", opts.Sheet)
	assert.Equal(t, "'", opts.Marker, "unset values keep their defaults")
	assert.Equal(t, "debug", f.LogLevel("info"))
	assert.Equal(t, "json", f.LogFormat("text"))
}

func TestParse_EmptyFileKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)

	assert.Equal(t, xlmtrace.DefaultOptions(), f.Apply(xlmtrace.DefaultOptions()))
	assert.Equal(t, "info", f.LogLevel("info"))
	assert.Equal(t, "text", f.LogFormat("text"))
}

func TestParse_UnknownAttribute(t *testing.T) {
	_, err := Parse([]byte("trace {\n  colour = \"red\"\n}\n"), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("trace {\n"), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlmtrace.hcl")
	require.NoError(t, os.WriteFile(path, []byte("log {\n  level = \"warn\"\n}\n"), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", f.LogLevel("info"))
	assert.Nil(t, f.Trace)
}
