// Package experiment runs step engines headlessly, without a surface or
// clock, and records how much work each step did.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/bars"
)

var (
	ErrStepLimit = errors.New("experiment: step limit reached before the sort finished")
	ErrNotSorted = errors.New("experiment: engine finished with an unsorted array")
)

// RunError wraps a failure with the step it happened on.
type RunError struct {
	Algorithm algorithms.Kind
	Step      int
	Wrapped   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s at step %d: %v", e.Algorithm.Slug(), e.Step, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}

type Config struct {
	Algorithm algorithms.Kind
	Bars      int
	Seed      int64
	// Input overrides the shuffled start when non-empty.
	Input []int
	// MaxSteps bounds the run; zero means Bars*Bars + Bars + 1.
	MaxSteps int
}

// Sample holds cumulative counters after one step.
type Sample struct {
	Step        int
	Comparisons int
	Swaps       int
	Writes      int
}

type Result struct {
	Algorithm algorithms.Kind
	Bars      int
	Seed      int64
	Steps     int
	Counters  bars.Counters
	Trace     []Sample
	Elapsed   time.Duration
}

func Run(ctx context.Context, cfg Config) (*Result, error) {
	arr, err := newArray(cfg)
	if err != nil {
		return nil, err
	}
	limit := cfg.MaxSteps
	if limit <= 0 {
		limit = arr.Len()*arr.Len() + arr.Len() + 1
	}

	eng := algorithms.New(cfg.Algorithm, arr.Len())
	res := &Result{
		Algorithm: cfg.Algorithm,
		Bars:      arr.Len(),
		Seed:      cfg.Seed,
		Trace:     make([]Sample, 0, arr.Len()),
	}

	start := time.Now()
	for eng.Advance(arr) {
		res.Steps++
		c := arr.Counters()
		res.Trace = append(res.Trace, Sample{Step: res.Steps, Comparisons: c.Comparisons, Swaps: c.Swaps, Writes: c.Writes})
		if res.Steps >= limit {
			return nil, &RunError{Algorithm: cfg.Algorithm, Step: res.Steps, Wrapped: ErrStepLimit}
		}
		if res.Steps%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	res.Elapsed = time.Since(start)
	res.Counters = arr.Counters()

	if !arr.IsSorted() {
		return nil, &RunError{Algorithm: cfg.Algorithm, Step: res.Steps, Wrapped: ErrNotSorted}
	}
	if err := arr.Validate(); err != nil {
		return nil, &RunError{Algorithm: cfg.Algorithm, Step: res.Steps, Wrapped: err}
	}
	return res, nil
}

// Bench runs every algorithm, one after another, on the same shuffled input.
func Bench(ctx context.Context, n int, seed int64) ([]*Result, error) {
	arr, err := bars.New(n, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	arr.Shuffle()
	input := arr.Values()

	results := make([]*Result, 0, len(algorithms.Kinds()))
	for _, kind := range algorithms.Kinds() {
		res, err := Run(ctx, Config{Algorithm: kind, Bars: n, Seed: seed, Input: input})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// StepWork returns the work done by each individual step, derived from the
// cumulative trace.
func (r *Result) StepWork() []float64 {
	work := make([]float64, len(r.Trace))
	prev := 0
	for i, s := range r.Trace {
		total := s.Comparisons + s.Swaps + s.Writes
		work[i] = float64(total - prev)
		prev = total
	}
	return work
}

func newArray(cfg Config) (*bars.Array, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if len(cfg.Input) > 0 {
		return bars.FromValues(cfg.Input, rng)
	}
	arr, err := bars.New(cfg.Bars, rng)
	if err != nil {
		return nil, err
	}
	arr.Shuffle()
	return arr, nil
}
