// Package bars provides the array model animated by the visualizer.
//
// The package defines the data every step engine mutates and every renderer
// draws:
//
//   - [Element]: one bar, a value in [1, N] plus a display [Role]
//   - [Array]: a fixed-length sequence of elements whose values always form a
//     permutation of 1..N
//   - [Counters]: comparisons, swaps and writes performed since the last
//     reinitialize or shuffle
//
// # Example
//
//	rng := rand.New(rand.NewSource(42))
//	arr, _ := bars.New(100, rng)
//	arr.Shuffle()
//	if arr.Less(0, 1) { ... }
//
// # Thread Safety
//
// Array instances are NOT thread-safe. The visualizer loop is the only
// mutator; renderers read a snapshot from [Array.Elements].
package bars
