package bars

// Role is the display tag of an element. It never affects sort behaviour.
type Role int

const (
	Idle Role = iota
	Compare
	Swapped
	Sorted
)

func (r Role) String() string {
	switch r {
	case Idle:
		return "idle"
	case Compare:
		return "compare"
	case Swapped:
		return "swapped"
	case Sorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Transient reports whether the role is cleared before the next step.
func (r Role) Transient() bool {
	return r == Compare || r == Swapped
}

type Element struct {
	Value int
	Role  Role
}

// Counters tracks the work done on an array.
type Counters struct {
	Comparisons int
	Swaps       int
	Writes      int
}

func (c Counters) Total() int {
	return c.Comparisons + c.Swaps + c.Writes
}
