package bars

import "math/rand"

// Array is the ordered bar sequence. Its length is fixed at construction.
type Array struct {
	values   []int
	roles    []Role
	rng      *rand.Rand
	counters Counters
}

// New creates an array of n bars holding 1..n in ascending order.
func New(n int, rng *rand.Rand) (*Array, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	a := &Array{
		values: make([]int, n),
		roles:  make([]Role, n),
		rng:    rng,
	}
	a.Reinitialize()
	return a, nil
}

// FromValues builds an array over an explicit permutation of 1..len(values).
func FromValues(values []int, rng *rand.Rand) (*Array, error) {
	a, err := New(len(values), rng)
	if err != nil {
		return nil, err
	}
	copy(a.values, values)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Array) Len() int { return len(a.values) }

// Reinitialize assigns 1..N in order and clears roles and counters.
func (a *Array) Reinitialize() {
	for i := range a.values {
		a.values[i] = i + 1
		a.roles[i] = Idle
	}
	a.counters = Counters{}
}

// Shuffle applies a uniform random permutation (Fisher-Yates).
func (a *Array) Shuffle() {
	for i := len(a.values) - 1; i > 0; i-- {
		j := a.rng.Intn(i + 1)
		a.values[i], a.values[j] = a.values[j], a.values[i]
	}
	a.resetRoles()
	a.counters = Counters{}
}

// Swap exchanges the values at i and j. Roles are untouched.
func (a *Array) Swap(i, j int) {
	a.values[i], a.values[j] = a.values[j], a.values[i]
	a.counters.Swaps++
}

// Less reports whether the value at i is smaller than the value at j.
func (a *Array) Less(i, j int) bool {
	a.counters.Comparisons++
	return a.values[i] < a.values[j]
}

// LessValue compares two values held outside the array, such as merge
// buffers, and counts it like any other comparison.
func (a *Array) LessValue(x, y int) bool {
	a.counters.Comparisons++
	return x < y
}

// Set overwrites one value. Used by merge write-back, where the permutation
// invariant only holds again once the whole pass is written.
func (a *Array) Set(i, v int) {
	a.values[i] = v
	a.counters.Writes++
}

func (a *Array) Value(i int) int { return a.values[i] }

func (a *Array) Role(i int) Role { return a.roles[i] }

func (a *Array) SetRole(i int, r Role) { a.roles[i] = r }

// ClearTransient resets Compare and Swapped roles to Idle.
func (a *Array) ClearTransient() {
	for i, r := range a.roles {
		if r.Transient() {
			a.roles[i] = Idle
		}
	}
}

func (a *Array) MarkAllSorted() {
	for i := range a.roles {
		a.roles[i] = Sorted
	}
}

func (a *Array) resetRoles() {
	for i := range a.roles {
		a.roles[i] = Idle
	}
}

func (a *Array) Counters() Counters { return a.counters }

// Values returns a copy of the current values.
func (a *Array) Values() []int {
	v := make([]int, len(a.values))
	copy(v, a.values)
	return v
}

// Elements returns a snapshot for renderers.
func (a *Array) Elements() []Element {
	els := make([]Element, len(a.values))
	for i := range a.values {
		els[i] = Element{Value: a.values[i], Role: a.roles[i]}
	}
	return els
}

func (a *Array) IsSorted() bool {
	for i := 1; i < len(a.values); i++ {
		if a.values[i-1] > a.values[i] {
			return false
		}
	}
	return true
}

func (a *Array) IsPermutation() bool {
	return a.Validate() == nil
}

// Validate checks that the values form a permutation of 1..N.
func (a *Array) Validate() error {
	seen := make([]bool, len(a.values)+1)
	for i, v := range a.values {
		if v < 1 || v > len(a.values) || seen[v] {
			return &IndexError{Index: i, Value: v, Wrapped: ErrNotPermutation}
		}
		seen[v] = true
	}
	return nil
}
