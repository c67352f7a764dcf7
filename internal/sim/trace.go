package sim

import "github.com/san-kum/sortvis/internal/sorting"

// Trace replays previously recorded steps as a Source.
type Trace struct {
	steps []sorting.Step
	pos   int
}

func NewTrace(steps []sorting.Step) *Trace {
	return &Trace{steps: steps}
}

func (t *Trace) Next() (sorting.Step, bool) {
	if t.pos >= len(t.steps) {
		return sorting.Step{}, false
	}
	step := t.steps[t.pos]
	t.pos++
	return step, true
}

// Stop exhausts the trace.
func (t *Trace) Stop() {
	t.pos = len(t.steps)
}

func (t *Trace) Len() int {
	return len(t.steps)
}
