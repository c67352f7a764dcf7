package experiment

import (
	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/sorting"
)

// Build creates one experiment per algorithm. Unless sameInput is set each
// algorithm shuffles its own array, seeded from seed plus its position.
func Build(algorithms []string, size int, seed int64, order string, sameInput bool) ([]*Experiment, error) {
	o, err := array.ParseOrder(order)
	if err != nil {
		return nil, err
	}

	if len(algorithms) == 0 {
		algorithms = sorting.Names()
	}

	exps := make([]*Experiment, 0, len(algorithms))
	for i, name := range algorithms {
		s := seed
		if !sameInput {
			s = seed + int64(i)
		}
		exp, err := New(Config{Algorithm: name, Size: size, Seed: s, Order: o})
		if err != nil {
			return nil, err
		}
		exps = append(exps, exp)
	}
	return exps, nil
}

// DefaultMetrics returns fresh metric instances for one run over input.
func DefaultMetrics(input []int) []sim.Metric {
	return []sim.Metric{
		metrics.NewSteps(),
		metrics.NewInversions(),
		metrics.NewSortedness(),
		metrics.NewWrites(input),
	}
}
