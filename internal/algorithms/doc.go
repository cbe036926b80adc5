// Package algorithms provides resumable step engines for the animated sorts.
//
// Each engine implements [Engine] and keeps its own cursor between calls, so
// one call to Advance is one unit of visible progress:
//
//   - [Bubble]: one adjacent comparison (and swap) per step
//   - [Selection]: one full minimum scan plus one swap per step
//   - [Insertion]: one element slid into the sorted prefix per step
//   - [Merge]: one bottom-up pass over the whole array per step
//   - [Quick]: one Lomuto partition of the top stacked range per step
//
// # Example
//
//	eng := algorithms.New(algorithms.KindQuick, arr.Len())
//	for eng.Advance(arr) {
//	    render(arr.Elements())
//	}
//
// Once Advance returns false every element is marked [bars.Sorted], and later
// calls keep returning false.
package algorithms
