package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
	"urf-recipe/internal/types"
)

// Package copies headers and the host's binary family from the staging
// folder into the package folder, then publishes the package info.
func (s Service) Package(ctx context.Context, req RecipeRequest) (PackageResult, error) {
	sess, err := s.prepare(ctx, req)
	if err != nil {
		return PackageResult{}, err
	}
	return s.pack(ctx, sess)
}

func (s Service) pack(ctx context.Context, sess session) (PackageResult, error) {
	staging := sess.layout.StagingFolder
	if _, err := os.Stat(staging); err != nil {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("staging folder not found, run build first: " + staging).
			WithCause(err)
	}
	for _, folder := range []string{staging, sess.layout.RecipeFolder, sess.layout.SourceFolder} {
		if within(sess.packageFolder, folder) {
			return PackageResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("package folder must not contain " + folder)
		}
	}
	if err := os.RemoveAll(sess.packageFolder); err != nil {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear package folder").
			WithCause(err)
	}
	patterns := core.PackagePatterns(sess.host.OS)
	copied, err := s.Files.Copy(patterns, staging, sess.packageFolder, true)
	if err != nil {
		return PackageResult{}, err
	}
	files := make([]string, 0, len(copied))
	for _, path := range copied {
		rel, err := filepath.Rel(sess.packageFolder, path)
		if err != nil {
			return PackageResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("packaged file outside package folder").
				WithCause(err)
		}
		files = append(files, filepath.ToSlash(rel))
	}
	manifest, err := s.Info.WriteManifest(sess.packageFolder, files)
	if err != nil {
		return PackageResult{}, err
	}

	info, err := s.packageInfo(sess)
	if err != nil {
		return PackageResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("package_folder", sess.packageFolder).
		Str("package_id", sess.packageID).
		Int("files", len(files)).
		Msg("package complete")
	return PackageResult{
		PackageID:     sess.packageID,
		PackageFolder: sess.packageFolder,
		Files:         files,
		Manifest:      manifest,
		Info:          info,
	}, nil
}

// packageInfo builds the published info and stores it next to the package.
func (s Service) packageInfo(sess session) (types.PackageInfo, error) {
	info := core.BuildPackageInfo(core.PackageInfoRequest{
		Recipe:            sess.recipe,
		PackageFolder:     sess.packageFolder,
		PackageID:         sess.packageID,
		Settings:          sess.settings,
		Options:           sess.options,
		DependencyOptions: sess.dependencyOptions,
	})
	if sess.cachedPackage {
		if _, err := s.Cache.Store(sess.reference, sess.packageID, info); err != nil {
			return types.PackageInfo{}, err
		}
		return info, nil
	}
	if err := s.Info.WritePackageInfo(sess.packageFolder, info); err != nil {
		return types.PackageInfo{}, err
	}
	return info, nil
}

// within reports whether path equals parent or lies below it.
func within(parent string, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
