package types

import "errors"

// Recipe maps an unordered pair of component names to a product name.
type Recipe struct {
	First   string `json:"first" yaml:"first"`
	Second  string `json:"second" yaml:"second"`
	Product string `json:"product" yaml:"product"`
}

// Matches reports whether the recipe's component pair equals {a, b} in
// either order.
func (r Recipe) Matches(a, b string) bool {
	return (r.First == a && r.Second == b) || (r.First == b && r.Second == a)
}

// RecipeBook holds the recipes shared by one or more vessels. Vessels keep a
// reference to the book, so recipes added later are visible to all of them.
type RecipeBook interface {
	// AddRecipe appends a recipe. Returns ErrDuplicateNames if the three
	// names are not pairwise distinct and ErrRecipeOverlap if the pair
	// already has a recipe. A rejected recipe leaves the book unchanged.
	AddRecipe(first, second, product string) error

	// Product returns the product of a and b in either order.
	Product(a, b string) (string, bool)

	// Components returns the components of the first-added recipe whose
	// product is product.
	Components(product string) (string, string, bool)

	// Recipes returns a copy of all recipes in insertion order.
	Recipes() []Recipe

	// Len returns the number of recipes.
	Len() int
}

// Recipe errors.
var (
	ErrDuplicateNames = errors.New("recipe names must be pairwise distinct")
	ErrRecipeOverlap  = errors.New("recipe for component pair already exists")
)
