package core

import "urf-recipe/internal/types"

const (
	defaultUser    = "uji-cirtesu-irslab+urobf+urf-common-cpp"
	defaultChannel = "stable"
)

// DefaultRecipe returns the urf_common_cpp recipe used when no recipe file
// is provided.
func DefaultRecipe() types.Recipe {
	return types.Recipe{
		Name:        "urf_common_cpp",
		Version:     "1.7.0",
		License:     "MIT",
		Author:      "Giacomo Lunghi",
		URL:         "https://gitlab.com/urobf/urf-common-cpp",
		Description: "Unified Robotic Framework Common Objects",
		User:        defaultUser,
		Channel:     defaultChannel,
		ShortPaths:  true,
		Settings: []types.SettingName{
			types.SettingOS,
			types.SettingCompiler,
			types.SettingBuildType,
			types.SettingArch,
		},
		DefaultOptions: types.Options{Shared: true},
		Requires:       []string{"spdlog/1.8.2", "nlohmann_json/3.9.1", "eigen/3.3.9"},
		BuildRequires:  []string{"gtest/1.10.0", "cmake/3.25.0"},
		Generators: []types.Generator{
			types.GeneratorCMake,
			types.GeneratorCMakeFindPackage,
			types.GeneratorVirtualEnv,
		},
		ExportsSources: []string{
			"environment/*",
			"src/*",
			"tests/*",
			"CMakeLists.txt",
			"LICENSE",
			"README.md",
		},
		SystemTools: []types.SystemTool{
			{Name: "lcov", Distros: []string{"ubuntu"}, Update: true},
		},
		// FIXME: copying dlls next to the Visual Studio binaries is a stopgap
		// for debugging without the activate script.
		WindowsImportPaths: []string{"../Windows/{build_type}/bin/{build_type}"},
		PackageInfo: types.CppInfo{
			Libs:        []string{"urf_common"},
			IncludeDirs: []string{"include/"},
			LibDirs:     []string{"lib"},
		},
	}
}

// ApplyRecipeDefaults fills the package layout fields a recipe file may
// omit.
func ApplyRecipeDefaults(recipe types.Recipe) types.Recipe {
	if len(recipe.PackageInfo.IncludeDirs) == 0 {
		recipe.PackageInfo.IncludeDirs = []string{"include/"}
	}
	if len(recipe.PackageInfo.LibDirs) == 0 {
		recipe.PackageInfo.LibDirs = []string{"lib"}
	}
	return recipe
}
