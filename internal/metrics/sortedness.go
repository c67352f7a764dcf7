package metrics

import (
	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sorting"
)

type Sortedness struct {
	name  string
	value float64
}

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness"}
}

func (s *Sortedness) Name() string {
	return s.name
}

// Observe records the fraction of positions already holding their final value.
func (s *Sortedness) Observe(step sorting.Step, index int) {
	s.value = Fraction(step.Values)
}

func (s *Sortedness) Value() float64 {
	return s.value
}

func (s *Sortedness) Reset() {
	s.value = 0
}

// Fraction returns the share of positions in values that are already in place.
func Fraction(values []int) float64 {
	if len(values) == 0 {
		return 1.0
	}
	return float64(array.Array(values).InPlace()) / float64(len(values))
}
