package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/sortvis/internal/sorting"
)

// Source is everything a driver needs from a step generator.
type Source interface {
	Next() (sorting.Step, bool)
	Stop()
}

type Metric interface {
	Name() string
	Observe(step sorting.Step, index int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(step sorting.Step, index int)
}

type Config struct {
	// KeepSteps retains every step in the Result.
	KeepSteps bool
	// MaxSteps stops the run early when positive.
	MaxSteps int
}

func DefaultConfig() Config {
	return Config{KeepSteps: true}
}

type Result struct {
	Algorithm  string
	Initial    []int
	Final      []int
	Steps      []sorting.Step
	StepsTaken int
	Truncated  bool
	Metrics    map[string]float64
	Elapsed    time.Duration
}

// Sorted reports whether the final array is in ascending order.
func (r *Result) Sorted() bool {
	for i := 1; i < len(r.Final); i++ {
		if r.Final[i] < r.Final[i-1] {
			return false
		}
	}
	return true
}

type RunError struct {
	Algorithm string
	Step      int
	Message   string
}

func (e RunError) Error() string {
	return fmt.Sprintf("%s: step %d: %s", e.Algorithm, e.Step, e.Message)
}
