package algorithms

import "github.com/san-kum/sortviz/internal/bars"

// Selection scans the whole unsorted suffix in a single step.
type Selection struct {
	i, j, min int
}

func (s *Selection) Kind() Kind { return KindSelection }

func (s *Selection) Reset(int) { s.i, s.j, s.min = 0, 0, 0 }

func (s *Selection) Advance(a *bars.Array) bool {
	n := a.Len()
	if s.i >= n-1 {
		return finish(a)
	}
	a.ClearTransient()
	s.min = s.i
	for s.j = s.i + 1; s.j < n; s.j++ {
		a.SetRole(s.j, bars.Compare)
		// strict less keeps the first minimum on ties
		if a.Less(s.j, s.min) {
			s.min = s.j
		}
	}
	if s.min != s.i {
		a.Swap(s.i, s.min)
	}
	a.SetRole(s.i, bars.Swapped)
	s.i++
	return true
}
