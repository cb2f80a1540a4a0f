package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urf-recipe/internal/types"
)

func samplePackageInfo(folder string) types.PackageInfo {
	return types.PackageInfo{
		Reference: "urf_common_cpp/1.7.0@uji-cirtesu-irslab+urobf+urf-common-cpp/stable",
		PackageID: "0123456789abcdef0123456789abcdef01234567",
		Settings: types.Settings{
			OS:        types.OSLinux,
			Compiler:  "gcc",
			BuildType: types.BuildTypeRelease,
			Arch:      types.ArchX86_64,
		},
		Options:           types.Options{Shared: true},
		Requires:          []string{"spdlog/1.8.2"},
		DependencyOptions: map[string]map[string]string{"spdlog": {"header_only": "True"}},
		CppInfo: types.CppInfo{
			Libs:        []string{"urf_common"},
			IncludeDirs: []string{"include/"},
			LibDirs:     []string{"lib"},
		},
		Env: map[string][]string{"PATH": {filepath.Join(folder, "lib")}},
	}
}

func TestPackageInfoFileRoundTrip(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "pkg")
	adapter := NewPackageInfoFileAdapter()
	want := samplePackageInfo(folder)

	require.NoError(t, adapter.WritePackageInfo(folder, want))
	got, err := adapter.ReadPackageInfo(folder)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("package info mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPackageInfoMissing(t *testing.T) {
	_, err := NewPackageInfoFileAdapter().ReadPackageInfo(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWriteManifest(t *testing.T) {
	folder := t.TempDir()
	writeTree(t, folder, "lib/liburf_common.so", "include/urf/a.hpp")

	entries, err := NewPackageInfoFileAdapter().WriteManifest(folder, []string{
		"lib/liburf_common.so",
		filepath.Join("include", "urf", "a.hpp"),
	})
	require.NoError(t, err)

	want := []types.ManifestEntry{
		{Path: "include/urf/a.hpp", Digest: digest.FromString("include/urf/a.hpp").String()},
		{Path: "lib/liburf_common.so", Digest: digest.FromString("lib/liburf_common.so").String()},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(filepath.Join(folder, ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t,
		"include/urf/a.hpp "+want[0].Digest+"\nlib/liburf_common.so "+want[1].Digest+"\n",
		string(data))
}

func TestWriteManifestMissingFile(t *testing.T) {
	_, err := NewPackageInfoFileAdapter().WriteManifest(t.TempDir(), []string{"nope.so"})
	require.Error(t, err)
}
