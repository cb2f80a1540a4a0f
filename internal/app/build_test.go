package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urf-recipe/internal/core"
	"urf-recipe/internal/types"
)

func TestBuildRunsStepsInOrder(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	req := env.request(linuxRelease)
	req.Jobs = 8

	result, err := env.service.Build(t.Context(), req)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"configure", "build", "test", "install"}, env.buildTool.steps); diff != "" {
		t.Fatalf("unexpected steps (-want +got):\n%s", diff)
	}
	assert.Equal(t, 8, env.buildTool.jobs)
	assert.Equal(t, filepath.Join(env.recipeFolder, "build", "Linux", "Release"), result.BuildFolder)
	assert.Equal(t, env.recipeFolder, env.buildTool.configure.SourceDir)
	assert.Equal(t, result.BuildFolder, env.buildTool.configure.BuildDir)
	assert.False(t, result.TestsSkipped)
}

func TestBuildSkipsTests(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	req := env.request(linuxRelease)
	req.SkipTests = true

	result, err := env.service.Build(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"configure", "build", "install"}, env.buildTool.steps)
	assert.True(t, result.TestsSkipped)
}

func TestBuildPositionIndependentCodeOnlyWhenStatic(t *testing.T) {
	for _, shared := range []bool{true, false} {
		env := newTestEnv(t, ubuntuHost)
		req := env.request(linuxRelease)
		req.Shared = boolPtr(shared)

		result, err := env.service.Build(t.Context(), req)
		require.NoError(t, err)

		pic, ok := core.DefinitionValue(env.buildTool.configure.Definitions, core.DefPositionIndependentCode)
		assert.Equal(t, !shared, ok)
		if !shared {
			assert.Equal(t, "ON", pic)
		}
		sharedLibs, _ := core.DefinitionValue(result.Definitions, core.DefBuildSharedLibs)
		assert.Equal(t, map[bool]string{true: "ON", false: "OFF"}[shared], sharedLibs)
		prefix, _ := core.DefinitionValue(result.Definitions, core.DefInstallPrefix)
		assert.Equal(t, filepath.Join(env.recipeFolder, "package")+string(filepath.Separator), prefix)
	}
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	env.buildTool.failStep = "build"

	_, err := env.service.Build(t.Context(), env.request(linuxRelease))
	require.Error(t, err)
	assert.Equal(t, []string{"configure", "build"}, env.buildTool.steps)
}

func TestBuildToolVersionMismatchOnlyWarns(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	env.buildTool.version = "3.16.3"

	_, err := env.service.Build(t.Context(), env.request(linuxRelease))
	require.NoError(t, err)

	env.buildTool.version = ""
	env.buildTool.steps = nil
	_, err = env.service.Build(t.Context(), env.request(linuxRelease))
	require.NoError(t, err)
	assert.Len(t, env.buildTool.steps, 4)
}

func TestBuildImportsOnlyForWindows(t *testing.T) {
	env := newTestEnv(t, windowsHost)
	spdlog := types.Reference{Name: "spdlog", Version: "1.8.2"}
	folder, err := env.service.Cache.Store(spdlog, "abc", types.PackageInfo{Reference: spdlog.String(), PackageID: "abc"})
	require.NoError(t, err)
	writeFiles(t, folder, "lib/spdlog.dll", "lib/spdlog.pdb", "lib/spdlog.lib")

	windows := types.Settings{OS: types.OSWindows, Compiler: "Visual Studio", BuildType: types.BuildTypeRelease, Arch: types.ArchX86_64}
	result, err := env.service.Build(t.Context(), env.request(windows))
	require.NoError(t, err)

	dest := filepath.Join(env.recipeFolder, "..", "Windows", "Release", "bin", "Release")
	assert.Equal(t, []string{filepath.Join(dest, "spdlog.dll"), filepath.Join(dest, "spdlog.pdb")}, result.Imported)
	assert.FileExists(t, filepath.Join(dest, "spdlog.dll"))
	assert.NoFileExists(t, filepath.Join(dest, "spdlog.lib"))

	linux, err := env.service.Build(t.Context(), env.request(linuxRelease))
	require.NoError(t, err)
	assert.Empty(t, linux.Imported)
}
