package experiment

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs a set of algorithms over several seeds concurrently.
type Ensemble struct {
	algorithms []string
	size       int
	numRuns    int
	seedStart  int64
	logger     *slog.Logger
}

func NewEnsemble(algorithms []string, size, numRuns int, seedStart int64, logger *slog.Logger) *Ensemble {
	if len(algorithms) == 0 {
		algorithms = List()
	}
	if size <= 0 {
		size = MinWidth
	}
	if numRuns < 1 {
		numRuns = 1
	}
	if seedStart == 0 {
		seedStart = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ensemble{
		algorithms: algorithms,
		size:       size,
		numRuns:    numRuns,
		seedStart:  seedStart,
		logger:     logger,
	}
}

// Summary aggregates the runs of one algorithm.
type Summary struct {
	Algorithm string
	Runs      int
	Mean      map[string]float64
	MeanSteps float64
}

// Run returns one summary per algorithm in the order they were given. Every
// algorithm sees the same seeds, so the inputs match across algorithms.
func (e *Ensemble) Run(ctx context.Context) ([]Summary, error) {
	results := make([][]*Result, len(e.algorithms))
	for i := range results {
		results[i] = make([]*Result, e.numRuns)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for a, name := range e.algorithms {
		for r := 0; r < e.numRuns; r++ {
			g.Go(func() error {
				exp, err := New(Config{
					Algorithm: name,
					Size:      e.size,
					Seed:      e.seedStart + int64(r),
				}, e.logger)
				if err != nil {
					return err
				}
				res, err := exp.Run(ctx)
				if err != nil {
					return err
				}
				results[a][r] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Summary, len(e.algorithms))
	for a, name := range e.algorithms {
		s := Summary{Algorithm: name, Runs: e.numRuns, Mean: make(map[string]float64)}
		for _, res := range results[a] {
			for k, v := range res.Metrics {
				s.Mean[k] += v / float64(e.numRuns)
			}
			s.MeanSteps += float64(len(res.Steps)) / float64(e.numRuns)
		}
		out[a] = s
	}
	return out, nil
}
