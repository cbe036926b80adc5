package algorithms

import "github.com/san-kum/sortviz/internal/bars"

// Merge is a bottom-up merge sort. One step merges every pair of adjacent
// blocks of the current width, then doubles the width.
type Merge struct {
	width       int
	left, right []int
}

func (m *Merge) Kind() Kind { return KindMerge }

func (m *Merge) Reset(n int) {
	m.width = 1
	if cap(m.left) < n {
		m.left = make([]int, 0, n)
		m.right = make([]int, 0, n)
	}
}

func (m *Merge) Width() int { return m.width }

func (m *Merge) Advance(a *bars.Array) bool {
	n := a.Len()
	if m.width >= n {
		return finish(a)
	}
	a.ClearTransient()
	for lo := 0; lo < n; lo += 2 * m.width {
		mid := min(lo+m.width-1, n-1)
		hi := min(lo+2*m.width-1, n-1)
		m.mergeBlocks(a, lo, mid, hi)
	}
	m.width *= 2
	return true
}

// mergeBlocks merges [lo, mid] and [mid+1, hi]. Ties take the left block.
func (m *Merge) mergeBlocks(a *bars.Array, lo, mid, hi int) {
	m.left = m.left[:0]
	m.right = m.right[:0]
	for k := lo; k <= mid; k++ {
		m.left = append(m.left, a.Value(k))
	}
	for k := mid + 1; k <= hi; k++ {
		m.right = append(m.right, a.Value(k))
	}

	i, j, k := 0, 0, lo
	for i < len(m.left) && j < len(m.right) {
		a.SetRole(k, bars.Compare)
		if a.LessValue(m.right[j], m.left[i]) {
			a.Set(k, m.right[j])
			j++
		} else {
			a.Set(k, m.left[i])
			i++
		}
		k++
	}
	for ; i < len(m.left); i++ {
		a.Set(k, m.left[i])
		k++
	}
	for ; j < len(m.right); j++ {
		a.Set(k, m.right[j])
		k++
	}
}
