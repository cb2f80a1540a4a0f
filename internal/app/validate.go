package app

import (
	"context"

	"urf-recipe/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	folder, err := absFolder(req.RecipeFolder, ".")
	if err != nil {
		return ValidateResult{}, err
	}
	recipe, path, err := s.loadRecipe(ctx, req.RecipePath, folder)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.NewRecipeCompiler().ValidateRecipe(ctx, recipe); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Reference:  core.RecipeReference(recipe).String(),
		RecipePath: path,
	}, nil
}
