package metrics

import (
	"slices"

	"github.com/san-kum/sortvis/internal/sorting"
)

// Writes counts array positions that changed between consecutive steps,
// starting from the initial array.
type Writes struct {
	name    string
	initial []int
	prev    []int
	total   int
}

func NewWrites(initial []int) *Writes {
	return &Writes{
		name:    "writes",
		initial: slices.Clone(initial),
		prev:    slices.Clone(initial),
	}
}

func (w *Writes) Name() string {
	return w.name
}

func (w *Writes) Observe(step sorting.Step, index int) {
	if w.prev != nil && len(w.prev) == len(step.Values) {
		for i, v := range step.Values {
			if w.prev[i] != v {
				w.total++
			}
		}
	}
	w.prev = slices.Clone(step.Values)
}

func (w *Writes) Value() float64 {
	return float64(w.total)
}

func (w *Writes) Reset() {
	w.prev = slices.Clone(w.initial)
	w.total = 0
}

type Steps struct {
	count int
}

func NewSteps() *Steps {
	return &Steps{}
}

func (s *Steps) Name() string                         { return "steps" }
func (s *Steps) Observe(step sorting.Step, index int) { s.count++ }
func (s *Steps) Value() float64                       { return float64(s.count) }
func (s *Steps) Reset()                               { s.count = 0 }
