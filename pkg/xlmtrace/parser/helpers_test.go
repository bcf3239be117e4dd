package parser

import "fmt"

// formulaLine returns a FORMULA record line for ref as the dump prints it.
func formulaLine(ref, formula string) string {
	return fmt.Sprintf(`'0006     27 FORMULA : Cell Formula - R1C1 [%s len=%d] [[ "%s" ]]`, ref, len(formula), formula)
}

// stringLine returns a STRING record line.
func stringLine(value string) string {
	return fmt.Sprintf(`'0207     10 STRING : String Value [[ "%s" ]]`, value)
}

// labelLine returns a builtin LABEL record line pointing at ref.
func labelLine(name, ref string) string {
	return fmt.Sprintf(`'0018     23 LABEL : Cell Value, String Constant - Builtin - %s [[ "=%s" ]]`, name, ref)
}
