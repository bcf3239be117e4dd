package models

// FormulaKind is the control-transfer class of a formula.
type FormulaKind string

const (
	// KindJump transfers control to an explicit target (RUN, GOTO).
	KindJump FormulaKind = "jump"
	// KindCall is a CALL or FORMULA cell; references are shown inline.
	KindCall FormulaKind = "call"
	// KindHalt ends the macro (HALT, RETURN).
	KindHalt FormulaKind = "halt"
	// KindOther is any other formula; control falls through.
	KindOther FormulaKind = "other"
)

// HaltReason says why a trace stopped.
type HaltReason string

const (
	HaltNoEntryPoint HaltReason = "no_entry_point"
	HaltNoFormula    HaltReason = "no_formula"
	HaltFormula      HaltReason = "halt_formula"
	HaltBudget       HaltReason = "budget_exhausted"
	HaltBadTarget    HaltReason = "unresolvable_target"
)

// Step is one visited formula cell.
type Step struct {
	// Cell is the visited reference in "$COL$ROW" form.
	Cell string `json:"cell"`
	// Kind is the classification of the formula.
	Kind FormulaKind `json:"kind"`
	// Formula is the raw formula text.
	Formula string `json:"formula"`
	// Text is the rendered trace line.
	Text string `json:"text"`
	// Value is the cell's decoded string, if any.
	Value *string `json:"value,omitempty"`
	// Target is the jump target for KindJump steps.
	Target string `json:"target,omitempty"`
	// Functions lists the function names called by the formula.
	Functions []string `json:"functions,omitempty"`
}

// SkippedLine describes a dump line the builder could not use.
type SkippedLine struct {
	// Line is the 1-based position in the input sequence.
	Line int `json:"line"`
	// Reason is the human-readable skip reason.
	Reason string `json:"reason"`
}

// Trace is the result of a single trace run.
type Trace struct {
	// Source names the input (file path), empty for in-memory input.
	Source string `json:"source,omitempty"`
	// Status is the entry-point status message.
	Status string `json:"status"`
	// EntryPoint is the cell where tracing began, empty if none.
	EntryPoint string `json:"entry_point,omitempty"`
	// AutoExec is the auto-exec hint found in the dump, if any.
	AutoExec *AutoExec `json:"auto_exec,omitempty"`
	// Steps are the visited formula cells in execution order.
	Steps []Step `json:"steps"`
	// Halt is the terminal condition.
	Halt HaltReason `json:"halt"`
	// Message is the terminal notice for abnormal halts (budget, bad target).
	Message string `json:"message,omitempty"`
	// Skipped lists dump lines that failed extraction.
	Skipped []SkippedLine `json:"skipped_lines,omitempty"`
}

// Lines returns the rendered trace lines in order.
func (t *Trace) Lines() []string {
	lines := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		lines = append(lines, s.Text)
	}
	return lines
}
