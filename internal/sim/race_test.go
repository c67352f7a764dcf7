package sim

import (
	"context"
	"math/rand"
	"testing"

	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sorting"
)

func TestRace(t *testing.T) {
	input, err := array.Generate(40, array.OrderRandom, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	entries := make([]Entry, 0)
	for _, name := range sorting.Names() {
		gen, err := sorting.New(name, input)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		entries = append(entries, Entry{Algorithm: name, Source: gen, Initial: input})
	}

	race := NewRace(func(Entry) *Runner {
		r := New()
		r.AddMetric(&testMetric{})
		return r
	})
	results, err := race.Run(context.Background(), entries, Config{})
	if err != nil {
		t.Fatalf("race failed: %v", err)
	}

	if len(results) != len(entries) {
		t.Fatalf("expected %d results, got %d", len(entries), len(results))
	}
	for i, res := range results {
		if res.Algorithm != entries[i].Algorithm {
			t.Errorf("result %d out of order: %s", i, res.Algorithm)
		}
		if !res.Sorted() {
			t.Errorf("%s did not sort: %v", res.Algorithm, res.Final)
		}
		if res.Metrics["test"] != float64(res.StepsTaken) {
			t.Errorf("%s: metric %f does not match steps %d", res.Algorithm, res.Metrics["test"], res.StepsTaken)
		}
	}
	if results[0].StepsTaken != 40*39/2 {
		t.Errorf("bubble took %d steps", results[0].StepsTaken)
	}
}

func TestRace_Error(t *testing.T) {
	entries := []Entry{
		{Algorithm: "ok", Source: newTestSource(3), Initial: []int{0, 1}},
		{Algorithm: "bad", Source: newTestSource(3), Initial: []int{0, 1, 2}},
	}

	_, err := NewRace(func(Entry) *Runner { return New() }).Run(context.Background(), entries, Config{})
	if err == nil {
		t.Fatal("expected error from mismatched entry")
	}
	for _, e := range entries {
		if !e.Source.(*testSource).stopped {
			t.Errorf("%s source not stopped", e.Algorithm)
		}
	}
}

func TestRace_RunAlgorithms(t *testing.T) {
	input := []int{5, 1, 4, 2, 3}
	race := NewRace(func(Entry) *Runner { return New() })

	results, err := race.RunAlgorithms(context.Background(), []string{"merge", "heap"}, input, DefaultConfig())
	if err != nil {
		t.Fatalf("race failed: %v", err)
	}
	if results[0].Algorithm != "merge" || results[1].Algorithm != "heap" {
		t.Errorf("results out of order")
	}
	if results[1].StepsTaken != 4 {
		t.Errorf("heap should take N-1 steps, got %d", results[1].StepsTaken)
	}
	if input[0] != 5 {
		t.Error("input was mutated")
	}

	if _, err := race.RunAlgorithms(context.Background(), []string{"heap", "bogo"}, input, DefaultConfig()); err == nil {
		t.Error("expected unknown algorithm error")
	}
}
