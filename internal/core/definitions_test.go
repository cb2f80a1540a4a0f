package core

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"urf-recipe/internal/types"
)

func TestNewBuildLayout(t *testing.T) {
	recipe := filepath.Join("work", "urf")
	settings := types.Settings{OS: types.OSLinux, BuildType: types.BuildTypeRelease}

	layout := NewBuildLayout(recipe, "", "", settings)
	assert.Equal(t, filepath.Join(recipe, "build", "Linux", "Release"), layout.BuildFolder)
	assert.Equal(t, filepath.Join(recipe, "package")+string(filepath.Separator), layout.StagingFolder)
	assert.Equal(t, recipe, layout.SourceFolder)
	assert.Equal(t, recipe, layout.InstallFolder)
}

func TestBuildDefinitionsShared(t *testing.T) {
	settings := types.Settings{OS: types.OSLinux, BuildType: types.BuildTypeRelease}
	layout := NewBuildLayout("/work/urf", "", "/work/urf/install", settings)

	defs := BuildDefinitions(layout, settings, types.Options{Shared: true})
	want := []types.Definition{
		{Name: DefInstallPrefix, Value: layout.StagingFolder},
		{Name: DefModulePath, Value: "/work/urf/install"},
		{Name: DefBuildType, Value: "Release"},
		{Name: DefBuildSharedLibs, Value: "ON"},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("unexpected definitions (-want +got):\n%s", diff)
	}
	_, ok := DefinitionValue(defs, DefPositionIndependentCode)
	assert.False(t, ok)
}

func TestBuildDefinitionsStaticSetsPIC(t *testing.T) {
	settings := types.Settings{OS: types.OSLinux, BuildType: types.BuildTypeDebug}
	layout := NewBuildLayout("/work/urf", "", "", settings)

	defs := BuildDefinitions(layout, settings, types.Options{Shared: false})
	pic, ok := DefinitionValue(defs, DefPositionIndependentCode)
	assert.True(t, ok)
	assert.Equal(t, "ON", pic)
	shared, _ := DefinitionValue(defs, DefBuildSharedLibs)
	assert.Equal(t, "OFF", shared)
}

func TestBuildDefinitionsModulePathUsesForwardSlashes(t *testing.T) {
	settings := types.Settings{OS: types.OSWindows, BuildType: types.BuildTypeRelease}
	layout := BuildLayout{InstallFolder: `C:\work\urf\install`}

	defs := BuildDefinitions(layout, settings, types.Options{Shared: true})
	value, _ := DefinitionValue(defs, DefModulePath)
	assert.Equal(t, "C:/work/urf/install", value)
}
