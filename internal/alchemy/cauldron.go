package alchemy

import (
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// NewCauldron returns a vessel that fuses each added element with stored
// matter according to book. The book is shared, not copied.
func NewCauldron(book types.RecipeBook) *Storage {
	return &Storage{policy: fusePolicy{book: book}}
}

// fusePolicy scans stored elements from most to least recent and fuses the
// incoming element with the first partner that has a recipe. At most one
// fusion happens per add.
//
// Inert catalysts on either side are skipped. A live catalyst loses one use
// and survives: an incoming catalyst is stored after the reaction, a stored
// one stays where it is. When neither side is a catalyst the partner is
// consumed.
type fusePolicy struct {
	book types.RecipeBook
}

func (fusePolicy) kind() string { return types.VesselCauldron }

func (p fusePolicy) add(s *Storage, e *types.Element) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		partner := s.elements[i]
		product, ok := p.book.Product(e.Name, partner.Name)
		if !ok || e.Inert() || partner.Inert() {
			continue
		}

		switch {
		case e.IsCatalyst() || partner.IsCatalyst():
			if partner.IsCatalyst() {
				partner.Uses--
			}
			if e.IsCatalyst() {
				e.Uses--
				s.push(e)
			}
		default:
			s.removeAt(i)
		}
		s.push(types.NewElement(product))
		return
	}
	s.push(e)
}
