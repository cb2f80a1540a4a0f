package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urf-recipe/internal/types"
)

type RecipeCompiler struct{}

// referenceToken matches a name, user or channel usable both in a reference
// and as a single cache folder name.
var referenceToken = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_+.-]*$`)

var validSettings = map[types.SettingName]struct{}{
	types.SettingOS:        {},
	types.SettingCompiler:  {},
	types.SettingBuildType: {},
	types.SettingArch:      {},
}

var validGenerators = map[types.Generator]struct{}{
	types.GeneratorCMake:            {},
	types.GeneratorCMakeFindPackage: {},
	types.GeneratorVirtualEnv:       {},
}

func NewRecipeCompiler() RecipeCompiler {
	return RecipeCompiler{}
}

func (c RecipeCompiler) ValidateRecipe(ctx context.Context, recipe types.Recipe) error {
	if strings.TrimSpace(recipe.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("name must be set")
	}
	if strings.TrimSpace(recipe.Version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version must be set")
	}
	if _, err := semver.StrictNewVersion(recipe.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("version is not a semantic version: %s", recipe.Version)).
			WithCause(err)
	}
	if strings.TrimSpace(recipe.License) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("license must be set")
	}
	if !referenceToken.MatchString(recipe.Name) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid name: %q", recipe.Name))
	}
	for _, field := range [][2]string{{"user", recipe.User}, {"channel", recipe.Channel}} {
		if field[1] != "" && !referenceToken.MatchString(field[1]) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid %s: %q", field[0], field[1]))
		}
	}
	if (recipe.User == "") != (recipe.Channel == "") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("user and channel must be set together")
	}
	for _, setting := range recipe.Settings {
		if _, ok := validSettings[setting]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown setting: %s", setting))
		}
	}
	for _, generator := range recipe.Generators {
		if _, ok := validGenerators[generator]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown generator: %s", generator))
		}
	}
	if _, err := ParseRequirements(recipe); err != nil {
		return err
	}
	for dep := range recipe.DependencyOptions {
		if !declaresRequirement(recipe, dep) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency options for undeclared requirement: %s", dep))
		}
	}
	if err := validateSystemTools(recipe.SystemTools); err != nil {
		return err
	}
	if len(recipe.PackageInfo.Libs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package_info.libs must not be empty")
	}
	assert.NotEmpty(ctx, RecipeReference(recipe).String(), "reference must be set")
	log.Ctx(ctx).Debug().Str("recipe", recipe.Name).Msg("recipe validated")
	return nil
}

func validateSystemTools(tools []types.SystemTool) error {
	for _, tool := range tools {
		if strings.TrimSpace(tool.Name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("system_tools.name must not be empty")
		}
		if len(tool.Distros) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("system tool %s missing distros", tool.Name))
		}
		if tool.MinVersion != "" {
			if _, err := parseDebVersion(tool.MinVersion); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("system tool %s has invalid min_version %s", tool.Name, tool.MinVersion)).
					WithCause(err)
			}
		}
	}
	return nil
}

func declaresRequirement(recipe types.Recipe, name string) bool {
	reqs, err := ParseRequirements(recipe)
	if err != nil {
		return false
	}
	_, ok := FindRequirement(reqs, name)
	return ok
}
