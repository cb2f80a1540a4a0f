package app

import (
	"context"

	"urf-recipe/internal/core"
)

// Inspect reports what a build would use without touching the disk.
func (s Service) Inspect(ctx context.Context, req RecipeRequest) (InspectResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		Reference:          sess.reference.String(),
		RecipePath:         sess.recipePath,
		PackageID:          sess.packageID,
		Settings:           sess.settings,
		Options:            sess.options,
		Requirements:       sess.requirements,
		DependencyOptions:  sess.dependencyOptions,
		ImportDestinations: core.ImportDestinations(sess.recipe, sess.settings),
		PackageFolder:      sess.packageFolder,
		CppInfo:            sess.recipe.PackageInfo,
	}, nil
}
