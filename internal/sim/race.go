package sim

import (
	"context"
	"io"
	"slices"

	"github.com/convox/logger"
	"github.com/san-kum/sortvis/internal/sorting"
	"golang.org/x/sync/errgroup"
)

// Entry is one contestant of a race: a source plus the input it sorts.
type Entry struct {
	Algorithm string
	Source    Source
	Initial   []int
}

// Race runs every entry concurrently. Each entry owns its source and array,
// so nothing is shared between goroutines. newRunner is called once per
// entry because metrics carry per-run state. The first error cancels the
// remaining runs; results keep the order of entries.
type Race struct {
	newRunner func(Entry) *Runner
	log       *logger.Logger
}

func NewRace(newRunner func(Entry) *Runner) *Race {
	return &Race{
		newRunner: newRunner,
		log:       logger.NewWriter("ns=sortvis pkg=sim", io.Discard),
	}
}

func (r *Race) SetLogger(log *logger.Logger) { r.log = log }

func (r *Race) Run(ctx context.Context, entries []Entry, cfg Config) ([]*Result, error) {
	log := r.log.At("race").Start()
	results := make([]*Result, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			runner := r.newRunner(e)
			res, err := runner.Run(gctx, e.Algorithm, e.Source, e.Initial, cfg)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		for _, e := range entries {
			e.Source.Stop()
		}
		return nil, log.Error(err)
	}

	log.Successf("entries=%d", len(entries))
	return results, nil
}

// RunAlgorithms races the named algorithms, each on its own copy of input.
func (r *Race) RunAlgorithms(ctx context.Context, names []string, input []int, cfg Config) ([]*Result, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		gen, err := sorting.New(name, input)
		if err != nil {
			for _, e := range entries {
				e.Source.Stop()
			}
			return nil, err
		}
		entries = append(entries, Entry{Algorithm: name, Source: gen, Initial: slices.Clone(input)})
	}
	return r.Run(ctx, entries, cfg)
}
