// Package alchemy implements the recipe table and the vessels of the
// alchemy engine: plain storage, the fusing Cauldron and the splitting
// Purifier.
package alchemy

import (
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// RecipeTable implements types.RecipeBook as an insertion-ordered slice.
// Lookups scan in insertion order so that Components returns the earliest
// recipe when several pairs share a product.
type RecipeTable struct {
	recipes []types.Recipe
}

// NewRecipeTable returns an empty recipe table.
func NewRecipeTable() *RecipeTable {
	return &RecipeTable{}
}

// AddRecipe appends first + second = product.
func (t *RecipeTable) AddRecipe(first, second, product string) error {
	if first == second || first == product || second == product {
		return types.ErrDuplicateNames
	}
	if _, ok := t.Product(first, second); ok {
		return types.ErrRecipeOverlap
	}
	t.recipes = append(t.recipes, types.Recipe{First: first, Second: second, Product: product})
	return nil
}

// Product returns the product of a and b in either order.
func (t *RecipeTable) Product(a, b string) (string, bool) {
	for _, r := range t.recipes {
		if r.Matches(a, b) {
			return r.Product, true
		}
	}
	return "", false
}

// Components returns the components of the first recipe producing product.
func (t *RecipeTable) Components(product string) (string, string, bool) {
	for _, r := range t.recipes {
		if r.Product == product {
			return r.First, r.Second, true
		}
	}
	return "", "", false
}

// Recipes returns a copy of the recipes in insertion order.
func (t *RecipeTable) Recipes() []types.Recipe {
	out := make([]types.Recipe, len(t.recipes))
	copy(out, t.recipes)
	return out
}

// Len returns the number of recipes.
func (t *RecipeTable) Len() int {
	return len(t.recipes)
}

var _ types.RecipeBook = (*RecipeTable)(nil)
