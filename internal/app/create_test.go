package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRunsFullLifecycle(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	writeFiles(t, env.recipeFolder, "CMakeLists.txt", "src/logger.cpp")
	staging := filepath.Join(env.recipeFolder, "package")
	env.buildTool.onInstall = func() {
		writeFiles(t, staging, "include/urf/common/logger.hpp", "lib/liburf_common.so")
	}

	result, err := env.service.Create(t.Context(), env.request(linuxRelease))
	require.NoError(t, err)

	assert.Equal(t, []string{"lcov"}, env.system.installs)
	assert.Equal(t, []string{"configure", "build", "test", "install"}, env.buildTool.steps)
	assert.Equal(t, result.Export.ExportSourceFolder, env.buildTool.configure.SourceDir)
	assert.Equal(t, []string{"include/urf/common/logger.hpp", "lib/liburf_common.so"}, result.Package.Files)

	folder, info, found, err := env.service.Cache.Lookup("urf_common_cpp", "1.7.0")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result.Package.PackageFolder, folder)
	assert.Equal(t, result.Package.PackageID, info.PackageID)
	assert.FileExists(t, filepath.Join(folder, "lib", "liburf_common.so"))
}

func TestCreateKeepsExplicitSourceFolder(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	env.buildTool.onInstall = func() {
		writeFiles(t, filepath.Join(env.recipeFolder, "package"), "include/a.hpp")
	}
	req := env.request(linuxRelease)
	req.SourceFolder = t.TempDir()

	_, err := env.service.Create(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, req.SourceFolder, env.buildTool.configure.SourceDir)
}

func TestCreateStopsWhenBuildFails(t *testing.T) {
	env := newTestEnv(t, ubuntuHost)
	env.buildTool.failStep = "test"

	_, err := env.service.Create(t.Context(), env.request(linuxRelease))
	require.Error(t, err)

	_, _, found, lookupErr := env.service.Cache.Lookup("urf_common_cpp", "1.7.0")
	require.NoError(t, lookupErr)
	assert.False(t, found)
}
