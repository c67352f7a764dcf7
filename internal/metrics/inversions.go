package metrics

import (
	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sorting"
)

// Inversions tracks how many out-of-order pairs remain after each step.
type Inversions struct {
	name    string
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{
		name:    "inversions",
		history: make([]float64, 0),
	}
}

func (m *Inversions) Name() string {
	return m.name
}

func (m *Inversions) Observe(step sorting.Step, index int) {
	m.history = append(m.history, float64(array.Array(step.Values).Inversions()))
}

func (m *Inversions) Value() float64 {
	if len(m.history) == 0 {
		return 0
	}
	return m.history[len(m.history)-1]
}

// History returns the inversion count after every observed step.
func (m *Inversions) History() []float64 {
	return m.history
}

func (m *Inversions) Reset() {
	m.history = m.history[:0]
}
