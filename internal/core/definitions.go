package core

import (
	"path/filepath"

	"urf-recipe/internal/shared"
	"urf-recipe/internal/types"
)

const (
	DefInstallPrefix           = "CMAKE_INSTALL_PREFIX"
	DefModulePath              = "CMAKE_MODULE_PATH"
	DefBuildType               = "CMAKE_BUILD_TYPE"
	DefBuildSharedLibs         = "BUILD_SHARED_LIBS"
	DefPositionIndependentCode = "CMAKE_POSITION_INDEPENDENT_CODE"
	stagingFolderName          = "package"
	buildFolderName            = "build"
)

// BuildLayout holds the folders a build works with.
type BuildLayout struct {
	RecipeFolder  string
	SourceFolder  string
	InstallFolder string
	BuildFolder   string
	StagingFolder string
}

// NewBuildLayout derives the build folder (build/<os>/<build_type>) and the
// staging folder (package/) from the recipe folder.
func NewBuildLayout(recipeFolder string, sourceFolder string, installFolder string, settings types.Settings) BuildLayout {
	if sourceFolder == "" {
		sourceFolder = recipeFolder
	}
	if installFolder == "" {
		installFolder = recipeFolder
	}
	return BuildLayout{
		RecipeFolder:  recipeFolder,
		SourceFolder:  sourceFolder,
		InstallFolder: installFolder,
		BuildFolder:   filepath.Join(recipeFolder, buildFolderName, string(settings.OS), string(settings.BuildType)),
		StagingFolder: filepath.Join(recipeFolder, stagingFolderName) + string(filepath.Separator),
	}
}

// BuildDefinitions returns the definitions handed to the build tool, in a
// fixed order. Position independent code is only requested for static
// builds.
func BuildDefinitions(layout BuildLayout, settings types.Settings, options types.Options) []types.Definition {
	defs := []types.Definition{
		{Name: DefInstallPrefix, Value: layout.StagingFolder},
		{Name: DefModulePath, Value: shared.ForwardSlashes(layout.InstallFolder)},
		{Name: DefBuildType, Value: string(settings.BuildType)},
		{Name: DefBuildSharedLibs, Value: cmakeBool(options.Shared)},
	}
	if !options.Shared {
		defs = append(defs, types.Definition{Name: DefPositionIndependentCode, Value: cmakeBool(true)})
	}
	return defs
}

func cmakeBool(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

// DefinitionValue looks up a definition by name.
func DefinitionValue(defs []types.Definition, name string) (string, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def.Value, true
		}
	}
	return "", false
}
