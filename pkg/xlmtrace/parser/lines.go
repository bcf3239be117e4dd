package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

// Markers that classify a dump line, checked in this order.
const (
	markerLabel   = "LABEL :"
	markerBuiltin = "Builtin -"
	markerFormula = "FORMULA :"
	markerString  = "STRING :"
)

var (
	cellIDPattern    = regexp.MustCompile(`(?s)\[(\$[A-Z]+\$\d+) len=\d+\]`)
	cellValuePattern = regexp.MustCompile(`(?s)\[\[ "?(.*?)"? \]\]`)
	builtinPattern   = regexp.MustCompile(`(?s)Builtin - (\w+)`)
)

// BuildResult is the output of the cell table builder.
type BuildResult struct {
	// Table holds every cell introduced by a formula line.
	Table *models.CellTable
	// AutoExec is the last auto-exec label found, nil if none.
	AutoExec *models.AutoExec
	// Skipped lists the lines that matched a marker but failed extraction.
	Skipped []*LineError
}

// BuildTable scans dump lines into a fresh cell table.
//
// A STRING line carries no cell identity; its value belongs to the record
// created by the closest preceding FORMULA line.
func BuildTable(lines []string) *BuildResult {
	res := &BuildResult{Table: models.NewCellTable()}
	var last *models.CellRecord

	for i, line := range lines {
		lineNo := i + 1
		switch {
		case strings.Contains(line, markerLabel) && strings.Contains(line, markerBuiltin):
			hint, err := parseLabel(line)
			if err != nil {
				res.skip(lineNo, "LABEL", err)
				continue
			}
			res.AutoExec = hint
		case strings.Contains(line, markerFormula):
			ref, formula, err := parseFormula(line)
			if err != nil {
				res.skip(lineNo, "FORMULA", err)
				continue
			}
			last = &models.CellRecord{Formula: &formula}
			res.Table.Put(ref, last)
		case strings.Contains(line, markerString):
			value, err := parseString(line)
			if err == nil && last == nil {
				err = ErrOrphanString
			}
			if err != nil {
				res.skip(lineNo, "STRING", err)
				continue
			}
			last.TextValue = &value
		}
	}
	return res
}

func (r *BuildResult) skip(line int, marker string, err error) {
	r.Skipped = append(r.Skipped, &LineError{Line: line, Marker: marker, Err: err})
}

func parseLabel(line string) (*models.AutoExec, error) {
	value := cellValuePattern.FindStringSubmatch(line)
	if value == nil {
		return nil, ErrNoValue
	}
	name := builtinPattern.FindStringSubmatch(line)
	if name == nil {
		return nil, ErrNoBuiltin
	}
	ref, err := ParseRef(strings.ReplaceAll(value[1], "=", ""))
	if err != nil {
		return nil, err
	}
	return &models.AutoExec{Name: name[1], Ref: ref}, nil
}

func parseFormula(line string) (models.CellRef, string, error) {
	id := cellIDPattern.FindStringSubmatch(line)
	if id == nil {
		return models.CellRef{}, "", ErrNoCellID
	}
	ref, err := ParseRef(id[1])
	if err != nil {
		return models.CellRef{}, "", err
	}
	value := cellValuePattern.FindStringSubmatch(line)
	if value == nil {
		return models.CellRef{}, "", ErrNoValue
	}
	return ref, value[1], nil
}

func parseString(line string) (string, error) {
	value := cellValuePattern.FindStringSubmatch(line)
	if value == nil {
		return "", ErrNoValue
	}
	return value[1], nil
}
