package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
)

const exportedRecipeName = "recipe.yaml"

// Export copies the exported sources and the recipe into the cache.
func (s Service) Export(ctx context.Context, req RecipeRequest) (ExportResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return ExportResult{}, err
	}
	return s.export(ctx, sess)
}

func (s Service) export(ctx context.Context, sess session) (ExportResult, error) {
	exportFolder := s.Cache.ExportFolder(sess.reference)
	sourceFolder := s.Cache.ExportSourceFolder(sess.reference)

	sources, err := s.Sources.ListSources(sess.layout.RecipeFolder)
	if err != nil {
		return ExportResult{}, err
	}
	var selected []string
	for _, source := range sources {
		if core.MatchAny(sess.recipe.ExportsSources, source) {
			selected = append(selected, source)
		}
	}

	if err := os.RemoveAll(sourceFolder); err != nil {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear export source folder").
			WithCause(err)
	}
	if err := os.MkdirAll(sourceFolder, 0755); err != nil {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create export source folder").
			WithCause(err)
	}
	if _, err := s.Files.CopyFiles(selected, sess.layout.RecipeFolder, sourceFolder); err != nil {
		return ExportResult{}, err
	}
	if err := s.Recipes.WriteRecipe(filepath.Join(exportFolder, exportedRecipeName), sess.recipe); err != nil {
		return ExportResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("reference", sess.reference.String()).
		Int("files", len(selected)).
		Str("export_folder", exportFolder).
		Msg("export complete")
	return ExportResult{
		Reference:          sess.reference.String(),
		ExportFolder:       exportFolder,
		ExportSourceFolder: sourceFolder,
		Files:              selected,
	}, nil
}
