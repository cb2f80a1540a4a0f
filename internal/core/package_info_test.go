package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"urf-recipe/internal/types"
)

func TestBuildPackageInfoDeclaresLayout(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "pkg")
	info := BuildPackageInfo(PackageInfoRequest{
		Recipe:        DefaultRecipe(),
		PackageFolder: folder,
		PackageID:     "abc",
		Settings:      types.Settings{OS: types.OSLinux, BuildType: types.BuildTypeRelease},
		Options:       types.Options{Shared: true},
	})

	assert.Equal(t, []string{"urf_common"}, info.CppInfo.Libs)
	assert.Equal(t, []string{"include/"}, info.CppInfo.IncludeDirs)
	assert.Equal(t, []string{"lib"}, info.CppInfo.LibDirs)
	assert.Equal(t, []string{filepath.Join(folder, "lib")}, info.Env[RuntimePathVariable])
	assert.Equal(t, "abc", info.PackageID)
	assert.Equal(t, "urf_common_cpp/1.7.0@uji-cirtesu-irslab+urobf+urf-common-cpp/stable", info.Reference)
}

func TestBuildPackageInfoAppendsLibDirExactlyOnce(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "pkg")
	libDir := filepath.Join(folder, "lib")
	incoming := map[string][]string{RuntimePathVariable: {"/usr/bin", libDir}}

	info := BuildPackageInfo(PackageInfoRequest{
		Recipe:        DefaultRecipe(),
		PackageFolder: folder,
		Env:           incoming,
	})

	count := 0
	for _, entry := range info.Env[RuntimePathVariable] {
		if entry == libDir {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"/usr/bin", libDir}, info.Env[RuntimePathVariable])
	assert.Len(t, incoming[RuntimePathVariable], 2)
}
