package recipebook

import (
	"fmt"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// builtinRecipes is the classic four-element book seeded when no recipe
// file is configured.
var builtinRecipes = []types.Recipe{
	{First: "Water", Second: "Wind", Product: "Ice"},
	{First: "Water", Second: "Fire", Product: "Steam"},
	{First: "Water", Second: "Earth", Product: "Mud"},
	{First: "Fire", Second: "Earth", Product: "Lava"},
	{First: "Fire", Second: "Wind", Product: "Energy"},
	{First: "Earth", Second: "Wind", Product: "Dust"},
	{First: "Lava", Second: "Water", Product: "Stone"},
	{First: "Mud", Second: "Fire", Product: "Brick"},
	{First: "Stone", Second: "Energy", Product: "Metal"},
	{First: "Metal", Second: "Fire", Product: "Gold"},
}

// Builtin returns a copy of the built-in recipes.
func Builtin() []types.Recipe {
	out := make([]types.Recipe, len(builtinRecipes))
	copy(out, builtinRecipes)
	return out
}

// SeedBuiltin adds the built-in recipes to book.
func SeedBuiltin(book types.RecipeBook) error {
	if err := apply(book, builtinRecipes); err != nil {
		return fmt.Errorf("seeding built-in recipes: %w", err)
	}
	return nil
}
