package sorting

import (
	"iter"
	"slices"
)

// sortFunc runs one algorithm over a, handing every step to yield.
// It must return as soon as yield returns false.
type sortFunc func(a []int, yield func(Step) bool)

// Generator is a lazy, finite, non-restartable sequence of steps.
type Generator struct {
	algorithm string
	next      func() (Step, bool)
	stop      func()
	done      bool
	count     int
}

func newGenerator(algorithm string, values []int, run sortFunc) *Generator {
	work := slices.Clone(values)
	next, stop := iter.Pull(func(yield func(Step) bool) {
		run(work, yield)
	})
	return &Generator{
		algorithm: algorithm,
		next:      next,
		stop:      stop,
	}
}

// Next produces the next step, or reports false once the array is sorted
// or the generator was stopped. Exhaustion is permanent.
func (g *Generator) Next() (Step, bool) {
	if g.done {
		return Step{}, false
	}
	step, ok := g.next()
	if !ok {
		g.done = true
		g.stop()
		return Step{}, false
	}
	g.count++
	return step, true
}

// Stop abandons the sequence. It is safe to call at any time, more than once.
func (g *Generator) Stop() {
	g.done = true
	g.stop()
}

func (g *Generator) Done() bool        { return g.done }
func (g *Generator) Algorithm() string { return g.algorithm }

// Count returns the number of steps produced so far.
func (g *Generator) Count() int { return g.count }

// All drains the remaining steps. Breaking out of the loop stops the generator.
func (g *Generator) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := g.Next()
			if !ok {
				return
			}
			if !yield(step) {
				g.Stop()
				return
			}
		}
	}
}

// Collect drains the generator into a slice.
func (g *Generator) Collect() []Step {
	steps := make([]Step, 0)
	for step := range g.All() {
		steps = append(steps, step)
	}
	return steps
}

func checkInput(algorithm string, values []int) error {
	if len(values) == 0 {
		return &PreconditionError{Algorithm: algorithm, Wrapped: ErrEmptyInput}
	}
	return nil
}

// checkRange accepts inclusive bounds describing a possibly empty slice of values.
func checkRange(algorithm string, values []int, low, high int) error {
	if err := checkInput(algorithm, values); err != nil {
		return err
	}
	n := len(values)
	if low < 0 || low > n || high < -1 || high >= n || low > high+1 {
		return &PreconditionError{
			Algorithm: algorithm,
			Size:      n,
			Low:       low,
			High:      high,
			Wrapped:   ErrInvalidRange,
		}
	}
	return nil
}
