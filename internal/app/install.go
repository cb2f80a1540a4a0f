package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Install runs the requirements, configure and generators steps.
func (s Service) Install(ctx context.Context, req RecipeRequest) (InstallResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return InstallResult{}, err
	}
	return s.install(ctx, sess)
}

func (s Service) install(ctx context.Context, sess session) (InstallResult, error) {
	s.installSystemTools(ctx, sess)
	deps, err := s.resolveRequirements(ctx, sess)
	if err != nil {
		return InstallResult{}, err
	}
	generated, err := s.Generators.Generate(sess.layout.InstallFolder, sess.recipe.Generators, deps)
	if err != nil {
		return InstallResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("reference", sess.reference.String()).
		Int("requirements", len(deps)).
		Strs("generated", generated).
		Msg("install complete")
	return InstallResult{
		Requirements:      deps,
		DependencyOptions: sess.dependencyOptions,
		Generated:         generated,
	}, nil
}
