package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/sortviz/internal/algorithms"
)

// Ensemble repeats one configuration over consecutive seeds, one goroutine
// per run.
type Ensemble struct {
	base      Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: cfg, numRuns: max(numRuns, 1), seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := e.base
			cfgCopy.Seed = e.seedStart + int64(idx)
			results[idx], errs[idx] = Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Summary aggregates an ensemble of one algorithm.
type Summary struct {
	Algorithm       algorithms.Kind
	Runs            int
	MeanSteps       float64
	MeanComparisons float64
	MeanSwaps       float64
	MeanWrites      float64
	MinComparisons  int
	MaxComparisons  int
}

func Summarize(results []*Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	s := Summary{
		Algorithm:      results[0].Algorithm,
		Runs:           len(results),
		MinComparisons: results[0].Counters.Comparisons,
		MaxComparisons: results[0].Counters.Comparisons,
	}
	for _, r := range results {
		s.MeanSteps += float64(r.Steps)
		s.MeanComparisons += float64(r.Counters.Comparisons)
		s.MeanSwaps += float64(r.Counters.Swaps)
		s.MeanWrites += float64(r.Counters.Writes)
		s.MinComparisons = min(s.MinComparisons, r.Counters.Comparisons)
		s.MaxComparisons = max(s.MaxComparisons, r.Counters.Comparisons)
	}
	n := float64(len(results))
	s.MeanSteps /= n
	s.MeanComparisons /= n
	s.MeanSwaps /= n
	s.MeanWrites /= n
	return s
}
