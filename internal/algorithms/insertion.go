package algorithms

import "github.com/san-kum/sortviz/internal/bars"

// Insertion slides one element into the sorted prefix per step.
type Insertion struct {
	i, j int
}

func (s *Insertion) Kind() Kind { return KindInsertion }

func (s *Insertion) Reset(int) { s.i, s.j = 1, 0 }

func (s *Insertion) Advance(a *bars.Array) bool {
	if s.i >= a.Len() {
		return finish(a)
	}
	a.ClearTransient()
	for s.j = s.i; s.j > 0 && a.Less(s.j, s.j-1); s.j-- {
		a.Swap(s.j, s.j-1)
		a.SetRole(s.j, bars.Swapped)
		a.SetRole(s.j-1, bars.Swapped)
	}
	a.SetRole(s.i, bars.Compare)
	s.i++
	return true
}
