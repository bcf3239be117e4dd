package xlmtrace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
	"github.com/xuri/excelize/v2"
)

// TraceFile traces a dump file. Files ending in .xlsx or .xlsm are read as
// workbooks; anything else is read as a text dump whose relevant lines start
// with Options.Marker.
func TraceFile(path string, opts Options) (*models.Trace, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var lines []string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		lines, err = workbookLines(path, opts.Sheet)
	default:
		lines, err = dumpLines(path, opts)
	}
	if err != nil {
		return nil, err
	}

	tr, err := TraceLines(lines, opts)
	if err != nil {
		return nil, err
	}
	tr.Source = path
	return tr, nil
}

func workbookLines(path, sheet string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.WorkbookLines(f, sheet)
}

func dumpLines(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ReadDumpLines(f, opts.Encoding, opts.marker())
}

// TraceLines builds a fresh cell table from dump lines and traces it.
func TraceLines(lines []string, opts Options) (*models.Trace, error) {
	switch opts.Mode {
	case "", ModeStandard, ModeShowFormula:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, opts.Mode)
	}

	log := opts.logger()
	built := parser.BuildTable(lines)
	for _, le := range built.Skipped {
		log.Debug("Skipped dump line.", "line", le.Line, "marker", le.Marker, "reason", le.Err)
	}
	log.Debug("Cell table built.", "cells", built.Table.Len(), "skipped", len(built.Skipped))

	return Trace(built, opts)
}

// Trace runs the tracer over an already built table.
func Trace(built *parser.BuildResult, opts Options) (*models.Trace, error) {
	entry, status, err := ResolveEntry(built.Table, built.AutoExec, opts.EntryPoint)
	if err != nil {
		return nil, err
	}
	opts.logger().Info("Entry point resolved.", "status", status)

	out := &models.Trace{
		Status:   status,
		AutoExec: built.AutoExec,
		Steps:    []models.Step{},
	}
	if entry != nil {
		out.EntryPoint = entry.String()
	}
	for _, le := range built.Skipped {
		out.Skipped = append(out.Skipped, models.SkippedLine{
			Line:   le.Line,
			Reason: le.Marker + ": " + le.Err.Error(),
		})
	}

	NewTracer(built.Table, opts).Run(NewState(entry, opts.Budget()), out)
	return out, nil
}
