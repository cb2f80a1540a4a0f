package ports

import "urf-recipe/internal/types"

type RecipePort interface {
	LoadRecipe(path string) (types.Recipe, error)
	WriteRecipe(path string, recipe types.Recipe) error
	// FindRecipe returns the recipe file in folder, or "" when there is none.
	FindRecipe(folder string) string
}
