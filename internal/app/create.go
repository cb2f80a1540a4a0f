package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
)

// Create runs the whole lifecycle: export, install, build and package.
// Unless a source folder is given, the build uses the exported sources.
func (s Service) Create(ctx context.Context, req RecipeRequest) (CreateResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return CreateResult{}, err
	}
	exported, err := s.export(ctx, sess)
	if err != nil {
		return CreateResult{}, err
	}
	if strings.TrimSpace(req.SourceFolder) == "" {
		sess.layout = core.NewBuildLayout(
			sess.layout.RecipeFolder,
			exported.ExportSourceFolder,
			sess.layout.InstallFolder,
			sess.settings,
		)
	}
	installed, err := s.install(ctx, sess)
	if err != nil {
		return CreateResult{}, err
	}
	built, err := s.build(ctx, sess)
	if err != nil {
		return CreateResult{}, err
	}
	packaged, err := s.pack(ctx, sess)
	if err != nil {
		return CreateResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("reference", sess.reference.String()).
		Str("package_id", sess.packageID).
		Msg("create complete")
	return CreateResult{
		Export:  exported,
		Install: installed,
		Build:   built,
		Package: packaged,
	}, nil
}
