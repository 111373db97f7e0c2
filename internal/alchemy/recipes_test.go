package alchemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

func TestRecipeTableAddRecipe(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		second  string
		product string
		wantErr error
	}{
		{"distinct names", "Water", "Wind", "Ice", nil},
		{"same components", "Water", "Water", "Lake", types.ErrDuplicateNames},
		{"first equals product", "Fire", "Water", "Fire", types.ErrDuplicateNames},
		{"second equals product", "Fire", "Water", "Water", types.ErrDuplicateNames},
		{"all equal", "Fire", "Fire", "Fire", types.ErrDuplicateNames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewRecipeTable()
			err := table.AddRecipe(tt.first, tt.second, tt.product)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, table.Len(), "rejected recipe must not be stored")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, table.Len())
		})
	}
}

func TestRecipeTableOverlap(t *testing.T) {
	table := NewRecipeTable()
	require.NoError(t, table.AddRecipe("Water", "Wind", "Ice"))

	t.Run("same pair same order", func(t *testing.T) {
		assert.ErrorIs(t, table.AddRecipe("Water", "Wind", "Snow"), types.ErrRecipeOverlap)
	})

	t.Run("same pair reversed", func(t *testing.T) {
		assert.ErrorIs(t, table.AddRecipe("Wind", "Water", "Ice"), types.ErrRecipeOverlap)
	})

	t.Run("different pair same product is allowed", func(t *testing.T) {
		assert.NoError(t, table.AddRecipe("Frost", "Water", "Ice"))
	})

	product, ok := table.Product("Water", "Wind")
	require.True(t, ok)
	assert.Equal(t, "Ice", product, "overlap must not replace the original recipe")
	assert.Equal(t, 2, table.Len())
}

func TestRecipeTableProduct(t *testing.T) {
	table := NewRecipeTable()
	require.NoError(t, table.AddRecipe("Water", "Wind", "Ice"))

	got, ok := table.Product("Water", "Wind")
	require.True(t, ok)
	assert.Equal(t, "Ice", got)

	got, ok = table.Product("Wind", "Water")
	require.True(t, ok)
	assert.Equal(t, "Ice", got)

	_, ok = table.Product("Fire", "Water")
	assert.False(t, ok)

	require.NoError(t, table.AddRecipe("Water", "Fire", "Steam"))
	got, ok = table.Product("Fire", "Water")
	require.True(t, ok)
	assert.Equal(t, "Steam", got)
}

func TestRecipeTableComponents(t *testing.T) {
	table := NewRecipeTable()
	require.NoError(t, table.AddRecipe("Water", "Wind", "Ice"))
	require.NoError(t, table.AddRecipe("Frost", "Rain", "Ice"))

	a, b, ok := table.Components("Ice")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Water", "Wind"}, []string{a, b}, "earliest recipe wins")

	_, _, ok = table.Components("Steam")
	assert.False(t, ok)

	_, _, ok = table.Components("Water")
	assert.False(t, ok, "components are not products")
}

func TestRecipeTableRecipesIsCopy(t *testing.T) {
	table := NewRecipeTable()
	require.NoError(t, table.AddRecipe("Water", "Wind", "Ice"))
	require.NoError(t, table.AddRecipe("Water", "Fire", "Steam"))

	recipes := table.Recipes()
	require.Len(t, recipes, 2)
	assert.Equal(t, types.Recipe{First: "Water", Second: "Wind", Product: "Ice"}, recipes[0])
	assert.Equal(t, "Steam", recipes[1].Product)

	recipes[0].Product = "Snow"
	got, _ := table.Product("Water", "Wind")
	assert.Equal(t, "Ice", got)
}
