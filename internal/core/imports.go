package core

import (
	"path/filepath"
	"strings"

	"urf-recipe/internal/types"
)

// ImportPatterns are the runtime artifacts copied next to consumers.
var ImportPatterns = []string{"*.dll", "*.pdb"}

// ImportDestinations expands the recipe's import path templates for the
// given settings. The Windows-only paths are appended when building for
// Windows.
func ImportDestinations(recipe types.Recipe, settings types.Settings) []string {
	templates := append([]string(nil), recipe.ImportPaths...)
	if settings.OS == types.OSWindows {
		templates = append(templates, recipe.WindowsImportPaths...)
	}
	replacer := strings.NewReplacer(
		"{build_type}", string(settings.BuildType),
		"{os}", string(settings.OS),
		"{arch}", string(settings.Arch),
		"{compiler}", settings.Compiler,
		"{name}", recipe.Name,
		"{version}", recipe.Version,
	)
	destinations := make([]string, 0, len(templates))
	for _, template := range templates {
		trimmed := strings.TrimSpace(template)
		if trimmed == "" {
			continue
		}
		destinations = append(destinations, filepath.FromSlash(replacer.Replace(trimmed)))
	}
	return destinations
}
