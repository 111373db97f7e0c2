package alchemy

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// addPolicy decides what happens to an element handed to a vessel. The
// element has already been validated; the policy mutates s directly.
type addPolicy interface {
	kind() string
	add(s *Storage, e *types.Element)
}

// Storage is the single vessel type. Elements are kept in insertion order;
// the policy chosen at construction determines Add behavior.
type Storage struct {
	elements []*types.Element
	policy   addPolicy
}

// NewStorage returns a plain storage that appends every added element.
func NewStorage() *Storage {
	return &Storage{policy: appendPolicy{}}
}

// Kind returns the vessel kind of the storage's policy.
func (s *Storage) Kind() string {
	return s.policy.kind()
}

// Add validates e and applies the storage's policy.
// Returns ErrTypeMismatch without modifying the storage if e is invalid.
func (s *Storage) Add(e *types.Element) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.policy.add(s, e)
	return nil
}

// Pop removes and returns the most recently added element named name.
func (s *Storage) Pop(name string) (*types.Element, bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Name == name {
			return s.removeAt(i), true
		}
	}
	return nil, false
}

// Extract removes and returns all elements in insertion order.
// A second call returns an empty slice.
func (s *Storage) Extract() []*types.Element {
	out := s.Contents()
	s.elements = nil
	return out
}

// Contents returns the elements in insertion order without removing them.
func (s *Storage) Contents() []*types.Element {
	out := make([]*types.Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Len returns the number of stored elements.
func (s *Storage) Len() int {
	return len(s.elements)
}

// Counts returns the number of stored elements per name.
func (s *Storage) Counts() map[string]int {
	counts := make(map[string]int, len(s.elements))
	for _, e := range s.elements {
		counts[e.Name]++
	}
	return counts
}

// Summarize renders the contents as a header line followed by one
// " * <name> x <count>" line per distinct name in alphabetical order, or
// " Empty." when nothing is stored.
func (s *Storage) Summarize() string {
	var b strings.Builder
	b.WriteString("Content:")

	counts := s.Counts()
	if len(counts) == 0 {
		b.WriteString("\n Empty.")
		return b.String()
	}
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(&b, "\n * %s x %d", name, counts[name])
	}
	return b.String()
}

func (s *Storage) push(e *types.Element) {
	s.elements = append(s.elements, e)
}

func (s *Storage) removeAt(i int) *types.Element {
	e := s.elements[i]
	s.elements = slices.Delete(s.elements, i, i+1)
	return e
}

// appendPolicy stores every element unchanged.
type appendPolicy struct{}

func (appendPolicy) kind() string { return types.VesselStorage }

func (appendPolicy) add(s *Storage, e *types.Element) { s.push(e) }

var _ types.Vessel = (*Storage)(nil)
