package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
	"urf-recipe/internal/types"
)

// session is the resolved, read-only state of one invocation.
type session struct {
	recipe            types.Recipe
	recipePath        string
	reference         types.Reference
	host              types.HostInfo
	settings          types.Settings
	options           types.Options
	requirements      []types.Requirement
	dependencyOptions map[string]map[string]string
	layout            core.BuildLayout
	packageID         string
	packageFolder     string
	cachedPackage     bool
	jobs              int
	skipTests         bool
}

func (s Service) loadRecipe(ctx context.Context, recipePath string, recipeFolder string) (types.Recipe, string, error) {
	path := strings.TrimSpace(recipePath)
	if path == "" {
		path = s.Recipes.FindRecipe(recipeFolder)
	}
	if path == "" {
		log.Ctx(ctx).Debug().Str("folder", recipeFolder).Msg("no recipe file found, using built-in recipe")
		return core.DefaultRecipe(), "", nil
	}
	recipe, err := s.Recipes.LoadRecipe(path)
	if err != nil {
		return types.Recipe{}, "", err
	}
	return core.ApplyRecipeDefaults(recipe), path, nil
}

func (s Service) prepare(ctx context.Context, req RecipeRequest) (session, error) {
	recipeFolder, err := absFolder(req.RecipeFolder, ".")
	if err != nil {
		return session{}, err
	}
	recipe, recipePath, err := s.loadRecipe(ctx, req.RecipePath, recipeFolder)
	if err != nil {
		return session{}, err
	}
	if err := core.NewRecipeCompiler().ValidateRecipe(ctx, recipe); err != nil {
		return session{}, err
	}
	requirements, err := core.ParseRequirements(recipe)
	if err != nil {
		return session{}, err
	}

	host, err := s.Host.Detect()
	if err != nil {
		return session{}, err
	}
	settings := core.ResolveSettings(host, req.Settings)
	if err := core.ValidateSettings(settings); err != nil {
		return session{}, err
	}
	options := recipe.DefaultOptions
	if req.Shared != nil {
		options.Shared = *req.Shared
	}

	sourceFolder, err := absFolder(req.SourceFolder, recipeFolder)
	if err != nil {
		return session{}, err
	}
	installFolder, err := absFolder(req.InstallFolder, recipeFolder)
	if err != nil {
		return session{}, err
	}

	dependencyOptions := core.ConfigureDependencies(ctx, recipe)
	reference := core.RecipeReference(recipe)
	packageID := core.PackageID(recipe, settings, options, dependencyOptions)
	sess := session{
		recipe:            recipe,
		recipePath:        recipePath,
		reference:         reference,
		host:              host,
		settings:          settings,
		options:           options,
		requirements:      requirements,
		dependencyOptions: dependencyOptions,
		layout:            core.NewBuildLayout(recipeFolder, sourceFolder, installFolder, settings),
		packageID:         packageID,
		jobs:              req.Jobs,
		skipTests:         req.SkipTests,
	}
	if strings.TrimSpace(req.PackageFolder) == "" {
		sess.packageFolder = s.Cache.PackageFolder(reference, packageID)
		sess.cachedPackage = true
	} else {
		sess.packageFolder, err = absFolder(req.PackageFolder, "")
		if err != nil {
			return session{}, err
		}
	}

	log.Ctx(ctx).Debug().
		Str("reference", reference.String()).
		Str("package_id", packageID).
		Str("os", string(settings.OS)).
		Str("build_type", string(settings.BuildType)).
		Bool("shared", options.Shared).
		Msg("recipe prepared")
	return sess, nil
}

func absFolder(path string, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = fallback
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid folder: " + path).
			WithCause(err)
	}
	return abs, nil
}
