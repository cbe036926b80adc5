package algorithms

import "github.com/san-kum/sortviz/internal/bars"

// Span is an inclusive index range waiting to be partitioned.
type Span struct {
	Low, High int
}

// Quick is an iterative quicksort over an explicit stack of spans, using the
// Lomuto scheme with the last element as pivot. One step pops one span.
type Quick struct {
	stack      []Span
	partitions int
}

func (q *Quick) Kind() Kind { return KindQuick }

func (q *Quick) Reset(n int) {
	q.stack = append(q.stack[:0], Span{0, n - 1})
	q.partitions = 0
}

// Pending returns a copy of the spans still on the stack, top last.
func (q *Quick) Pending() []Span {
	s := make([]Span, len(q.stack))
	copy(s, q.stack)
	return s
}

// Partitions counts steps that partitioned a span of two or more elements.
func (q *Quick) Partitions() int { return q.partitions }

func (q *Quick) Advance(a *bars.Array) bool {
	a.ClearTransient()
	if len(q.stack) == 0 {
		return finish(a)
	}
	top := q.stack[len(q.stack)-1]
	q.stack = q.stack[:len(q.stack)-1]
	if top.Low >= top.High {
		return true
	}

	p := q.partition(a, top.Low, top.High)
	q.partitions++
	q.stack = append(q.stack, Span{top.Low, p - 1}, Span{p + 1, top.High})
	return true
}

func (q *Quick) partition(a *bars.Array, lo, hi int) int {
	i := lo - 1
	for j := lo; j < hi; j++ {
		a.SetRole(j, bars.Compare)
		if a.Less(j, hi) {
			i++
			if i != j {
				a.Swap(i, j)
			}
			a.SetRole(i, bars.Swapped)
			a.SetRole(j, bars.Swapped)
		}
	}
	if i+1 != hi {
		a.Swap(i+1, hi)
	}
	a.SetRole(i+1, bars.Swapped)
	return i + 1
}
