package alchemy

import (
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// NewPurifier returns a vessel that splits each added element into the
// components of the first recipe producing it. The book is shared.
func NewPurifier(book types.RecipeBook) *Storage {
	return &Storage{policy: splitPolicy{book: book}}
}

// splitPolicy replaces a known product with two fresh plain elements and
// stores anything else unchanged. Catalyst uses are not carried over.
type splitPolicy struct {
	book types.RecipeBook
}

func (splitPolicy) kind() string { return types.VesselPurifier }

func (p splitPolicy) add(s *Storage, e *types.Element) {
	first, second, ok := p.book.Components(e.Name)
	if !ok {
		s.push(e)
		return
	}
	s.push(types.NewElement(first))
	s.push(types.NewElement(second))
}
