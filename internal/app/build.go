package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

const buildToolName = "cmake"

// Build configures, builds, tests and installs with CMake, then imports the
// runtime artifacts of the requirements.
func (s Service) Build(ctx context.Context, req RecipeRequest) (BuildResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return BuildResult{}, err
	}
	return s.build(ctx, sess)
}

func (s Service) build(ctx context.Context, sess session) (BuildResult, error) {
	logger := log.Ctx(ctx)
	layout := sess.layout
	buildType := sess.settings.BuildType
	defs := core.BuildDefinitions(layout, sess.settings, sess.options)

	s.checkBuildTool(ctx, sess.requirements)

	logger.Info().Str("build_folder", layout.BuildFolder).Msg("configuring")
	if err := s.BuildTool.Configure(ctx, ports.ConfigureRequest{
		SourceDir:   layout.SourceFolder,
		BuildDir:    layout.BuildFolder,
		Definitions: defs,
	}); err != nil {
		return BuildResult{}, err
	}
	logger.Info().Int("jobs", sess.jobs).Msg("building")
	if err := s.BuildTool.Build(ctx, layout.BuildFolder, buildType, sess.jobs); err != nil {
		return BuildResult{}, err
	}
	if sess.skipTests {
		logger.Info().Msg("skipping tests")
	} else {
		logger.Info().Msg("running tests")
		if err := s.BuildTool.Test(ctx, layout.BuildFolder, buildType); err != nil {
			return BuildResult{}, err
		}
	}
	logger.Info().Str("prefix", layout.StagingFolder).Msg("installing")
	if err := s.BuildTool.Install(ctx, layout.BuildFolder, buildType); err != nil {
		return BuildResult{}, err
	}

	deps, err := s.resolveRequirements(ctx, sess)
	if err != nil {
		return BuildResult{}, err
	}
	imported, err := s.imports(ctx, sess, deps)
	if err != nil {
		return BuildResult{}, err
	}
	return BuildResult{
		BuildFolder:  layout.BuildFolder,
		Definitions:  defs,
		TestsSkipped: sess.skipTests,
		Imported:     imported,
	}, nil
}

// checkBuildTool only warns: an older CMake may still build the project.
func (s Service) checkBuildTool(ctx context.Context, requirements []types.Requirement) {
	logger := log.Ctx(ctx)
	want, ok := core.FindRequirement(requirements, buildToolName)
	if !ok {
		return
	}
	version, err := s.BuildTool.Version(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine cmake version")
		return
	}
	satisfied, err := core.ToolVersionSatisfies(want, version)
	if err != nil {
		logger.Warn().Err(err).Msg("could not compare cmake version")
		return
	}
	if !satisfied {
		logger.Warn().
			Str("installed", version).
			Str("required", want.Version).
			Msg("cmake is older than the build requirement")
	}
}

// imports copies *.dll and *.pdb from each cached requirement's lib folder
// into every import destination below the install folder.
func (s Service) imports(ctx context.Context, sess session, deps []types.ResolvedRequirement) ([]string, error) {
	var imported []string
	for _, dest := range core.ImportDestinations(sess.recipe, sess.settings) {
		target := filepath.Join(sess.layout.InstallFolder, dest)
		for _, dep := range deps {
			if !dep.Cached() {
				continue
			}
			copied, err := s.Files.Copy(core.ImportPatterns, filepath.Join(dep.Folder, "lib"), target, true)
			if err != nil {
				return nil, err
			}
			imported = append(imported, copied...)
		}
	}
	if len(imported) > 0 {
		log.Ctx(ctx).Info().Int("files", len(imported)).Msg("imported runtime files")
	}
	return imported, nil
}
