package sim

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/convox/logger"
	"github.com/san-kum/sortvis/internal/sorting"
)

// Runner drains a step source synchronously, feeding metrics and observers.
type Runner struct {
	metrics   []Metric
	observers []Observer
	log       *logger.Logger
}

func New() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       logger.NewWriter("ns=sortvis pkg=sim", io.Discard),
	}
}

func (r *Runner) AddMetric(m Metric)           { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)       { r.observers = append(r.observers, o) }
func (r *Runner) SetLogger(log *logger.Logger) { r.log = log }

// Run consumes src until it is exhausted, the step limit is hit or ctx is
// canceled. On cancellation the partial result is returned with ctx.Err().
// The source is always stopped before Run returns.
func (r *Runner) Run(ctx context.Context, algorithm string, src Source, initial []int, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}
	defer src.Stop()

	log := r.log.At("run").Replace("algorithm", algorithm).Start()

	result := &Result{
		Algorithm: algorithm,
		Initial:   slices.Clone(initial),
		Final:     slices.Clone(initial),
		Metrics:   make(map[string]float64),
	}
	if cfg.KeepSteps {
		result.Steps = make([]sorting.Step, 0)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.finish(result, start)
			log.Logf("state=canceled steps=%d", result.StepsTaken)
			return result, ctx.Err()
		default:
		}

		if cfg.MaxSteps > 0 && result.StepsTaken >= cfg.MaxSteps {
			result.Truncated = true
			break
		}

		step, ok := src.Next()
		if !ok {
			break
		}

		if len(initial) > 0 && len(step.Values) != len(initial) {
			err := RunError{Algorithm: algorithm, Step: result.StepsTaken, Message: "step length differs from input"}
			r.finish(result, start)
			return result, log.Error(err)
		}

		for _, m := range r.metrics {
			m.Observe(step, result.StepsTaken)
		}
		for _, obs := range r.observers {
			obs.OnStep(step, result.StepsTaken)
		}

		result.Final = step.Values
		result.StepsTaken++
		if cfg.KeepSteps {
			result.Steps = append(result.Steps, step)
		}
	}

	r.finish(result, start)
	log.Successf("steps=%d truncated=%t", result.StepsTaken, result.Truncated)
	return result, nil
}

func (r *Runner) finish(result *Result, start time.Time) {
	result.Elapsed = time.Since(start)
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("max steps must not be negative, got %d", cfg.MaxSteps)
	}
	return nil
}

// RunWithCallback pulls steps and hands each to callback until the source is
// exhausted or callback returns false.
func (r *Runner) RunWithCallback(ctx context.Context, src Source, callback func(sorting.Step, int) bool) error {
	defer src.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		step, ok := src.Next()
		if !ok {
			return nil
		}
		if !callback(step, i) {
			return nil
		}
	}
}
