package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/xuri/efp"
)

var (
	jumpPattern        = regexp.MustCompile(`(?s)=(?:RUN|GOTO)\((.*)\)`)
	refTokenPattern    = regexp.MustCompile(`[~$][A-Z]+[~$]\d+`)
	formulaWrapPattern = regexp.MustCompile(`^=FORMULA\((.*?),[a-zA-Z]+\d+\)`)
	displayStripper    = strings.NewReplacer("~", "", "$", "", " ", "")
)

// Classify returns the control-transfer kind of a formula. For jumps the
// raw target argument is returned as well.
func Classify(formula string) (models.FormulaKind, string) {
	if m := jumpPattern.FindStringSubmatch(formula); m != nil {
		return models.KindJump, m[1]
	}
	if strings.Contains(formula, "=CALL") || strings.Contains(formula, "=FORMULA") {
		return models.KindCall, ""
	}
	if formula == "=HALT()" || formula == "=RETURN()" {
		return models.KindHalt, ""
	}
	return models.KindOther, ""
}

// Substitute replaces every reference token whose cell has a decoded string
// with that string in double quotes. FORMULA wrappers additionally get their
// `" & "` concatenations collapsed.
func Substitute(formula string, table *models.CellTable) string {
	out := refTokenPattern.ReplaceAllStringFunc(formula, func(tok string) string {
		ref, err := ParseRef(tok)
		if err != nil {
			return tok
		}
		if text, ok := table.TextValue(ref); ok {
			return `"` + text + `"`
		}
		return tok
	})
	if strings.Contains(out, "=FORMULA") {
		out = strings.ReplaceAll(out, `" & "`, "")
	}
	return out
}

// Display renders a trace line: the formula without reference delimiters
// and spaces, followed by the cell value in brackets when present.
// showFormula rewrites a leading FORMULA(expr,ref) wrapper to =expr.
func Display(formula string, value *string, showFormula bool) string {
	text := displayStripper.Replace(formula)
	if showFormula {
		text = formulaWrapPattern.ReplaceAllString(text, "=${1}")
	}
	if value != nil {
		text += "[" + *value + "]"
	}
	return text
}

// Functions lists the names of the functions a formula calls, outermost
// first. Formulas the tokenizer cannot handle yield nil.
func Functions(formula string) (names []string) {
	defer func() {
		if recover() != nil {
			names = nil
		}
	}()
	ps := efp.ExcelParser()
	for _, tok := range ps.Parse(formula) {
		if tok.TType == efp.TokenTypeFunction && tok.TSubType == efp.TokenSubTypeStart {
			names = append(names, strings.ToUpper(tok.TValue))
		}
	}
	return names
}
