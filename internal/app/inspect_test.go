package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urf-recipe/internal/types"
)

func writeRecipe(t *testing.T, folder string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "urf-recipe.yaml"), []byte(content), 0644))
}

func TestInspectDefaultRecipe(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	result, err := env.service.Inspect(t.Context(), env.request(types.Settings{}))
	require.NoError(t, err)

	assert.Equal(t, "urf_common_cpp/1.7.0@uji-cirtesu-irslab+urobf+urf-common-cpp/stable", result.Reference)
	assert.Equal(t, linuxRelease, result.Settings)
	assert.True(t, result.Options.Shared)
	assert.Len(t, result.PackageID, 40)
	assert.Empty(t, result.ImportDestinations)
	assert.Equal(t, []string{"urf_common"}, result.CppInfo.Libs)
	assert.True(t, filepath.IsAbs(result.PackageFolder))
	assert.Contains(t, result.PackageFolder, env.cacheRoot)

	var names []string
	for _, req := range result.Requirements {
		names = append(names, req.Name)
	}
	if diff := cmp.Diff([]string{"spdlog", "nlohmann_json", "eigen", "gtest", "cmake"}, names); diff != "" {
		t.Fatalf("unexpected requirements (-want +got):\n%s", diff)
	}
}

func TestInspectForcesSpdlogHeaderOnly(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	writeRecipe(t, env.recipeFolder, `
name: demo
version: 0.1.0
license: MIT
settings: [os, build_type]
requires: [spdlog/1.8.2]
dependency_options:
  spdlog:
    header_only: "False"
    wchar_support: "False"
package_info:
  libs: [demo]
`)
	for _, shared := range []bool{true, false} {
		req := env.request(linuxRelease)
		req.Shared = boolPtr(shared)
		result, err := env.service.Inspect(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, shared, result.Options.Shared)
		assert.Equal(t, map[string]string{"header_only": "True", "wchar_support": "False"}, result.DependencyOptions["spdlog"])
	}
}

func TestInspectWindowsImportDestinations(t *testing.T) {
	env := newTestEnv(t, windowsHost)
	settings := linuxRelease
	settings.OS = types.OSWindows
	settings.Compiler = "Visual Studio"
	settings.BuildType = types.BuildTypeDebug

	result, err := env.service.Inspect(t.Context(), env.request(settings))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.FromSlash("../Windows/Debug/bin/Debug")}, result.ImportDestinations)
}

func TestInspectRejectsUnknownSetting(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	settings := linuxRelease
	settings.Arch = "sparc"
	_, err := env.service.Inspect(t.Context(), env.request(settings))
	require.Error(t, err)
}

func TestInspectPackageIDFollowsOptions(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	shared := env.request(linuxRelease)
	static := env.request(linuxRelease)
	static.Shared = boolPtr(false)

	a, err := env.service.Inspect(t.Context(), shared)
	require.NoError(t, err)
	b, err := env.service.Inspect(t.Context(), static)
	require.NoError(t, err)
	assert.NotEqual(t, a.PackageID, b.PackageID)

	again, err := env.service.Inspect(t.Context(), shared)
	require.NoError(t, err)
	assert.Equal(t, a.PackageID, again.PackageID)
}
