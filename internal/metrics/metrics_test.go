package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/sortvis/internal/sorting"
)

func TestInversions(t *testing.T) {
	m := NewInversions()

	m.Observe(sorting.Step{Values: []int{3, 1, 2}}, 0)
	if m.Value() != 2 {
		t.Errorf("expected 2 inversions, got %f", m.Value())
	}

	m.Observe(sorting.Step{Values: []int{1, 2, 3}}, 1)
	if m.Value() != 0 {
		t.Errorf("expected 0 inversions, got %f", m.Value())
	}

	if h := m.History(); len(h) != 2 || h[0] != 2 {
		t.Errorf("unexpected history %v", h)
	}

	m.Reset()
	if m.Value() != 0 || len(m.History()) != 0 {
		t.Error("expected empty metric after reset")
	}
}

func TestSortedness(t *testing.T) {
	m := NewSortedness()

	m.Observe(sorting.Step{Values: []int{1, 3, 2, 4}}, 0)
	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected sortedness 0.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}

	if Fraction(nil) != 1.0 {
		t.Error("empty array should count as fully sorted")
	}
}

func TestWrites(t *testing.T) {
	m := NewWrites([]int{2, 1, 3})

	m.Observe(sorting.Step{Values: []int{1, 2, 3}}, 0)
	m.Observe(sorting.Step{Values: []int{1, 2, 3}}, 1)
	if m.Value() != 2 {
		t.Errorf("expected 2 writes, got %f", m.Value())
	}

	m.Reset()
	m.Observe(sorting.Step{Values: []int{2, 1, 3}}, 0)
	if m.Value() != 0 {
		t.Errorf("expected 0 writes after reset, got %f", m.Value())
	}
}

func TestWritesOverBubbleSort(t *testing.T) {
	input := []int{3, 2, 1}
	gen, err := sorting.Bubble(input)
	if err != nil {
		t.Fatalf("bubble failed: %v", err)
	}

	m := NewWrites(input)
	for step := range gen.All() {
		m.Observe(step, 0)
	}
	// three swaps, two positions each
	if m.Value() != 6 {
		t.Errorf("expected 6 writes, got %f", m.Value())
	}
}

func TestSteps(t *testing.T) {
	m := NewSteps()
	for i := 0; i < 4; i++ {
		m.Observe(sorting.Step{}, i)
	}
	if m.Name() != "steps" || m.Value() != 4 {
		t.Errorf("unexpected %s=%f", m.Name(), m.Value())
	}
}
