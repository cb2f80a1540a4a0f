package core

import (
	"path/filepath"

	"urf-recipe/internal/shared"
	"urf-recipe/internal/types"
)

// RuntimePathVariable is the search-path variable extended with the
// package's library directory.
const RuntimePathVariable = "PATH"

// PackageInfoRequest carries everything published for one package.
type PackageInfoRequest struct {
	Recipe            types.Recipe
	PackageFolder     string
	PackageID         string
	Settings          types.Settings
	Options           types.Options
	DependencyOptions map[string]map[string]string
	Env               map[string][]string
}

// BuildPackageInfo declares libs, include and lib dirs, and appends the
// package lib folder to the runtime search path. The entry is added once
// even if the incoming env already lists it.
func BuildPackageInfo(req PackageInfoRequest) types.PackageInfo {
	env := map[string][]string{}
	for key, values := range req.Env {
		env[key] = append([]string(nil), values...)
	}
	libDir := filepath.Join(req.PackageFolder, "lib")
	env[RuntimePathVariable] = shared.AppendUnique(env[RuntimePathVariable], libDir)

	return types.PackageInfo{
		Reference:         RecipeReference(req.Recipe).String(),
		PackageID:         req.PackageID,
		Settings:          req.Settings,
		Options:           req.Options,
		Requires:          append([]string(nil), req.Recipe.Requires...),
		DependencyOptions: req.DependencyOptions,
		CppInfo: types.CppInfo{
			Libs:        append([]string(nil), req.Recipe.PackageInfo.Libs...),
			IncludeDirs: append([]string(nil), req.Recipe.PackageInfo.IncludeDirs...),
			LibDirs:     append([]string(nil), req.Recipe.PackageInfo.LibDirs...),
			BinDirs:     append([]string(nil), req.Recipe.PackageInfo.BinDirs...),
		},
		Env: env,
	}
}
