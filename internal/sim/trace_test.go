package sim

import (
	"context"
	"testing"

	"github.com/san-kum/sortvis/internal/sorting"
)

func TestTrace(t *testing.T) {
	gen, err := sorting.Insertion([]int{4, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	steps := gen.Collect()

	trace := NewTrace(steps)
	if trace.Len() != 3 {
		t.Fatalf("expected 3 steps, got %d", trace.Len())
	}

	result, err := New().Run(context.Background(), "insertion", trace, []int{4, 3, 2, 1}, DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 3 || !result.Sorted() {
		t.Errorf("unexpected replay result: %+v", result)
	}

	if _, ok := trace.Next(); ok {
		t.Error("trace should be exhausted after Run")
	}
}

func TestTrace_Stop(t *testing.T) {
	trace := NewTrace([]sorting.Step{{Values: []int{1}}, {Values: []int{1}}})
	trace.Stop()
	if _, ok := trace.Next(); ok {
		t.Error("expected no steps after Stop")
	}
}
