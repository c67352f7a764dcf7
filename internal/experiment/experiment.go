package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/sorting"
)

type Config struct {
	Algorithm string
	Size      int
	Seed      int64
	Order     array.Order
}

// Experiment pairs one algorithm with a reproducible input array.
type Experiment struct {
	cfg       Config
	input     array.Array
	generator *sorting.Generator
	runner    *sim.Runner
}

func New(cfg Config) (*Experiment, error) {
	if _, err := sorting.Lookup(cfg.Algorithm); err != nil {
		return nil, err
	}
	input, err := array.Generate(cfg.Size, cfg.Order, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg, input: input}, nil
}

// FromInput builds an experiment over an explicit array.
func FromInput(algorithm string, input []int) (*Experiment, error) {
	if _, err := sorting.Lookup(algorithm); err != nil {
		return nil, err
	}
	return &Experiment{
		cfg:   Config{Algorithm: algorithm, Size: len(input)},
		input: array.Array(input).Clone(),
	}, nil
}

func (e *Experiment) Config() Config     { return e.cfg }
func (e *Experiment) Input() array.Array { return e.input.Clone() }

func (e *Experiment) Setup(metrics []sim.Metric, observers ...sim.Observer) error {
	gen, err := sorting.New(e.cfg.Algorithm, e.input)
	if err != nil {
		return err
	}
	e.generator = gen
	e.runner = sim.New()
	for _, m := range metrics {
		e.runner.AddMetric(m)
	}
	for _, o := range observers {
		e.runner.AddObserver(o)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context, cfg sim.Config) (*sim.Result, error) {
	if e.runner == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.runner.Run(ctx, e.cfg.Algorithm, e.generator, e.input, cfg)
}

// Entry exposes the experiment as a race contestant. Setup must have been called.
func (e *Experiment) Entry() sim.Entry {
	return sim.Entry{Algorithm: e.cfg.Algorithm, Source: e.generator, Initial: e.input}
}

// GetRunner returns the underlying runner for adding observers
func (e *Experiment) GetRunner() *sim.Runner {
	return e.runner
}
