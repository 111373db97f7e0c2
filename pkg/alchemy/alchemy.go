// Package alchemy provides the public constructors for the alchemy engine.
// This package exposes the recipe table and the three vessel kinds while
// keeping implementation details internal.
//
// Example:
//
//	book := alchemy.NewRecipeTable()
//	_ = book.AddRecipe("Water", "Wind", "Ice")
//	cauldron := alchemy.NewCauldron(book)
//	_ = cauldron.Add(types.NewElement("Water"))
//	_ = cauldron.Add(types.NewElement("Wind"))
//	cauldron.Extract() // [<AE: Ice>]
package alchemy

import (
	"fmt"

	"github.com/mesh-intelligence/alchemy/internal/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// NewRecipeTable returns an empty recipe book.
func NewRecipeTable() types.RecipeBook {
	return alchemy.NewRecipeTable()
}

// NewStorage returns a vessel that stores elements unchanged.
func NewStorage() types.Vessel {
	return alchemy.NewStorage()
}

// NewCauldron returns a vessel that fuses elements using book.
func NewCauldron(book types.RecipeBook) types.Vessel {
	return alchemy.NewCauldron(book)
}

// NewPurifier returns a vessel that splits elements using book.
func NewPurifier(book types.RecipeBook) types.Vessel {
	return alchemy.NewPurifier(book)
}

// NewVessel returns a vessel of the given kind (one of types.VesselKinds).
func NewVessel(kind string, book types.RecipeBook) (types.Vessel, error) {
	switch kind {
	case types.VesselStorage:
		return NewStorage(), nil
	case types.VesselCauldron:
		return NewCauldron(book), nil
	case types.VesselPurifier:
		return NewPurifier(book), nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnknownVessel, kind)
	}
}
