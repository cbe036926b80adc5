package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/bars"
)

var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Engine is a sort decomposed into single steps.
type Engine interface {
	Kind() Kind
	// Reset moves the cursor back to the start condition for n bars.
	Reset(n int)
	// Advance performs one step and reports whether more work remains.
	Advance(a *bars.Array) bool
}

type Kind int

const (
	KindBubble Kind = iota
	KindSelection
	KindInsertion
	KindMerge
	KindQuick
	kindCount
)

var kindNames = [...]string{"Bubble Sort", "Selection Sort", "Insertion Sort", "Merge Sort", "Quick Sort"}

var kindSlugs = [...]string{"bubble", "selection", "insertion", "merge", "quick"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Slug is the lowercase name used on the command line and in config files.
func (k Kind) Slug() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindSlugs[k]
}

// Cycle steps through the algorithms in dir, wrapping at both ends.
func (k Kind) Cycle(dir int) Kind {
	n := int(kindCount)
	return Kind(((int(k)+dir)%n + n) % n)
}

func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(strings.TrimSuffix(s, " sort"), "sort")
	for k, slug := range kindSlugs {
		if s == slug {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New returns an engine of the given kind at its start state for n bars.
func New(kind Kind, n int) Engine {
	var e Engine
	switch kind {
	case KindSelection:
		e = &Selection{}
	case KindInsertion:
		e = &Insertion{}
	case KindMerge:
		e = &Merge{}
	case KindQuick:
		e = &Quick{}
	default:
		e = &Bubble{}
	}
	e.Reset(n)
	return e
}

// finish marks the whole array sorted. Every engine ends through here.
func finish(a *bars.Array) bool {
	a.MarkAllSorted()
	return false
}
