// Package recipebook loads recipe books from files into a types.RecipeBook
// and writes them back out. Supported formats are JSONL, YAML and SQLite,
// chosen by file extension.
package recipebook

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/alchemy/internal/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// ErrIncompleteRecipe is returned for a record with an empty name.
var ErrIncompleteRecipe = errors.New("recipe record has an empty name")

// Load reads the recipe book at path and adds its recipes to book in file
// order. Loading is all-or-nothing: if any record is incomplete or rejected
// by AddRecipe, book is left unchanged. Returns the number of recipes added.
func Load(book types.RecipeBook, path string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}

	format, err := types.RecipeFormat(path)
	if err != nil {
		return 0, fmt.Errorf("recipe book %s: %w", path, err)
	}

	var recipes []types.Recipe
	switch format {
	case types.RecipeFormatJSONL:
		recipes, err = readJSONL(path, log)
	case types.RecipeFormatYAML:
		recipes, err = readYAML(path)
	case types.RecipeFormatSQLite:
		recipes, err = readSQLite(path)
	}
	if err != nil {
		return 0, err
	}

	if err := apply(book, recipes); err != nil {
		return 0, fmt.Errorf("recipe book %s: %w", path, err)
	}

	log.Debug("loaded recipe book",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("recipes", len(recipes)),
		zap.Int("total", book.Len()))
	return len(recipes), nil
}

// Save writes recipes to path in the format implied by its extension. The
// file is replaced atomically.
func Save(path string, recipes []types.Recipe) error {
	format, err := types.RecipeFormat(path)
	if err != nil {
		return fmt.Errorf("recipe book %s: %w", path, err)
	}

	switch format {
	case types.RecipeFormatJSONL:
		return writeJSONL(path, recipes)
	case types.RecipeFormatYAML:
		return writeYAML(path, recipes)
	default:
		return writeSQLite(path, recipes)
	}
}

// apply adds recipes to book only if all of them would be accepted. The
// recipes are first replayed on a scratch table seeded with book's current
// contents.
func apply(book types.RecipeBook, recipes []types.Recipe) error {
	scratch := alchemy.NewRecipeTable()
	for _, r := range book.Recipes() {
		if err := scratch.AddRecipe(r.First, r.Second, r.Product); err != nil {
			return fmt.Errorf("seeding scratch table: %w", err)
		}
	}

	for i, r := range recipes {
		if r.First == "" || r.Second == "" || r.Product == "" {
			return fmt.Errorf("record %d: %w", i+1, ErrIncompleteRecipe)
		}
		if err := scratch.AddRecipe(r.First, r.Second, r.Product); err != nil {
			return fmt.Errorf("record %d (%s + %s = %s): %w", i+1, r.First, r.Second, r.Product, err)
		}
	}

	for _, r := range recipes {
		if err := book.AddRecipe(r.First, r.Second, r.Product); err != nil {
			return err
		}
	}
	return nil
}
