package xlmtrace

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

// Terminal messages appended after the last step.
const (
	MessageBudgetExhausted = "Maximum number of empty cells reached. Parser halted."
	messageBadTarget       = "Unresolvable jump target %s. Parser halted."
)

// Tracer walks a cell table from an entry point.
type Tracer struct {
	table *models.CellTable
	opts  Options
	log   *slog.Logger
}

// NewTracer returns a tracer over table. The table must not change while
// the tracer runs.
func NewTracer(table *models.CellTable, opts Options) *Tracer {
	return &Tracer{table: table, opts: opts, log: opts.logger()}
}

// Run steps st until it halts, appending visited steps to out.
func (t *Tracer) Run(st *State, out *models.Trace) {
	for !st.Halted {
		t.Step(st, out)
	}
	out.Halt = st.Reason
}

// Step performs a single transition. A step is appended to out whenever a
// formula cell is visited.
func (t *Tracer) Step(st *State, out *models.Trace) {
	if st.Halted {
		return
	}
	if st.Current == nil {
		st.halt(models.HaltNoEntryPoint)
		return
	}

	cur := *st.Current
	rec, ok := t.table.Get(cur)
	if !ok {
		if !st.spend() {
			t.exhaust(st, out, cur)
			return
		}
		next := st.Advance(cur)
		st.Current = &next
		return
	}
	if !rec.HasFormula() {
		t.log.Debug("Cell has no formula, trace ends.", "cell", cur.String())
		st.halt(models.HaltNoFormula)
		return
	}

	formula := *rec.Formula
	kind, target := parser.Classify(formula)
	step := models.Step{
		Cell:      cur.String(),
		Kind:      kind,
		Formula:   formula,
		Value:     rec.TextValue,
		Functions: parser.Functions(formula),
	}
	shown := formula
	switch kind {
	case models.KindJump:
		step.Target = strings.TrimSpace(strings.ReplaceAll(target, "~", "$"))
	case models.KindCall:
		shown = parser.Substitute(formula, t.table)
	}
	step.Text = parser.Display(shown, rec.TextValue, t.opts.ShowFormula())
	out.Steps = append(out.Steps, step)
	t.log.Debug("Visited cell.", "cell", step.Cell, "kind", string(kind), "text", step.Text)

	switch kind {
	case models.KindJump:
		ref, err := parser.ParseRef(step.Target)
		if err != nil {
			t.log.Warn("Jump target is not a cell reference.", "cell", step.Cell, "target", step.Target)
			out.Message = fmt.Sprintf(messageBadTarget, step.Target)
			st.halt(models.HaltBadTarget)
			return
		}
		// Re-entering a cell by jump is a loop iteration and costs budget.
		if !st.land(ref) && !st.spend() {
			t.exhaust(st, out, ref)
			return
		}
		st.Current = &ref
	case models.KindHalt:
		st.halt(models.HaltFormula)
	default:
		next := st.Advance(cur)
		st.Current = &next
	}
}

func (t *Tracer) exhaust(st *State, out *models.Trace, at models.CellRef) {
	t.log.Warn("Empty cell budget exhausted.", "cell", at.String(), "budget", t.opts.Budget())
	out.Message = MessageBudgetExhausted
	st.halt(models.HaltBudget)
}
