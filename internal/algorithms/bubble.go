package algorithms

import "github.com/san-kum/sortviz/internal/bars"

// Bubble sorts by adjacent swaps. There is no early exit: every pass runs.
type Bubble struct {
	i, j int
}

func (b *Bubble) Kind() Kind { return KindBubble }

func (b *Bubble) Reset(int) { b.i, b.j = 0, 0 }

func (b *Bubble) Advance(a *bars.Array) bool {
	n := a.Len()
	if b.i >= n-1 {
		return finish(a)
	}
	a.ClearTransient()
	a.SetRole(b.j, bars.Compare)
	a.SetRole(b.j+1, bars.Compare)
	if a.Less(b.j+1, b.j) {
		a.Swap(b.j, b.j+1)
		a.SetRole(b.j, bars.Swapped)
		a.SetRole(b.j+1, bars.Swapped)
	}
	b.j++
	if b.j >= n-b.i-1 {
		b.i++
		b.j = 0
	}
	return true
}
