package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// autoExecNames maps lower-cased defined names to the builtin label they
// stand for.
var autoExecNames = map[string]string{
	"auto_open":       "Auto_Open",
	"auto_close":      "Auto_Close",
	"auto_activate":   "Auto_Activate",
	"auto_deactivate": "Auto_Deactivate",
}

// WorkbookLines renders the formula cells of a workbook as dump lines in the
// format BuildTable consumes. Sheets are visited in workbook order, rows
// before columns. An empty sheet name selects every sheet.
func WorkbookLines(f *excelize.File, sheet string) ([]string, error) {
	sheets := f.GetSheetList()
	if sheet != "" {
		found := false
		for _, name := range sheets {
			if name == sheet {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("sheet %q not found", sheet)
		}
		sheets = []string{sheet}
	}

	lines := autoExecLines(f, sheet)
	for _, name := range sheets {
		cellLines, err := formulaLines(f, name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cellLines...)
	}
	return lines, nil
}

// autoExecLines turns Auto_Open style defined names into label lines.
func autoExecLines(f *excelize.File, sheet string) []string {
	var lines []string
	for _, dn := range f.GetDefinedName() {
		name := strings.TrimPrefix(strings.ToLower(dn.Name), "_xlnm.")
		label, ok := autoExecNames[name]
		if !ok {
			continue
		}
		refSheet, cell := splitRefersTo(dn.RefersTo)
		if sheet != "" && refSheet != "" && refSheet != sheet {
			continue
		}
		ref, err := ParseRef(cell)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf(`'0018 LABEL : Cell Value, String Constant - Builtin - %s [[ "=%s" ]]`, label, ref))
	}
	return lines
}

// splitRefersTo splits 'Sheet Name'!$A$1 or =Sheet1!$A$1 into sheet and cell.
func splitRefersTo(refersTo string) (string, string) {
	refersTo = strings.TrimPrefix(strings.TrimSpace(refersTo), "=")
	idx := strings.LastIndex(refersTo, "!")
	if idx < 0 {
		return "", refersTo
	}
	return strings.Trim(refersTo[:idx], "'"), refersTo[idx+1:]
}

func formulaLines(f *excelize.File, sheet string) ([]string, error) {
	maxCol, maxRow, err := sheetBounds(f, sheet)
	if err != nil {
		return nil, err
	}

	var lines []string
	for row := 1; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			cellName, _ := excelize.CoordinatesToCellName(col, row)
			formula, err := f.GetCellFormula(sheet, cellName)
			if err != nil || formula == "" {
				continue
			}
			if !strings.HasPrefix(formula, "=") {
				formula = "=" + formula
			}
			absName, _ := excelize.CoordinatesToCellName(col, row, true)
			lines = append(lines, fmt.Sprintf(`'0006 FORMULA : Cell Formula - R%dC%d [%s len=%d] [[ "%s" ]]`,
				row, col, absName, len(formula), formula))

			value, err := f.GetCellValue(sheet, cellName)
			if err != nil || value == "" {
				continue
			}
			if _, isText := parseValue(value).(string); isText {
				lines = append(lines, fmt.Sprintf(`'0207 STRING : String Value [[ "%s" ]]`, value))
			}
		}
	}
	return lines, nil
}

// sheetBounds returns the used range of a sheet, taking the larger of the
// stored dimension and the extent of the cell values.
func sheetBounds(f *excelize.File, sheet string) (int, int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	maxCol, maxRow := 0, len(rows)
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		parts := strings.Split(dim, ":")
		if col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1]); err == nil {
			maxCol = max(maxCol, col)
			maxRow = max(maxRow, row)
		}
	}
	return maxCol, maxRow, nil
}

// parseValue attempts to parse a cached cell value as a number or boolean.
// Returns int64, float64 or bool where possible, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if s == "TRUE" || s == "FALSE" {
		return s == "TRUE"
	}
	return s
}
