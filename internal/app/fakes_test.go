package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"urf-recipe/internal/adapters"
	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

type fakeHost struct {
	info types.HostInfo
}

func (h fakeHost) Detect() (types.HostInfo, error) {
	return h.info, nil
}

type fakeSystem struct {
	version    string
	installed  bool
	queryErr   error
	installErr error
	installs   []string
	updates    []bool
}

func (f *fakeSystem) Installed(_ context.Context, _ string) (string, bool, error) {
	return f.version, f.installed, f.queryErr
}

func (f *fakeSystem) Install(_ context.Context, name string, update bool) error {
	f.installs = append(f.installs, name)
	f.updates = append(f.updates, update)
	return f.installErr
}

type fakeBuildTool struct {
	version   string
	steps     []string
	configure ports.ConfigureRequest
	jobs      int
	failStep  string
	onInstall func()
}

func (f *fakeBuildTool) step(name string) error {
	f.steps = append(f.steps, name)
	if f.failStep == name {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cmake " + name + " failed")
	}
	return nil
}

func (f *fakeBuildTool) Version(_ context.Context) (string, error) {
	if f.version == "" {
		return "", errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("cmake not found")
	}
	return f.version, nil
}

func (f *fakeBuildTool) Configure(_ context.Context, req ports.ConfigureRequest) error {
	f.configure = req
	return f.step("configure")
}

func (f *fakeBuildTool) Build(_ context.Context, _ string, _ types.BuildType, jobs int) error {
	f.jobs = jobs
	return f.step("build")
}

func (f *fakeBuildTool) Test(_ context.Context, _ string, _ types.BuildType) error {
	return f.step("test")
}

func (f *fakeBuildTool) Install(_ context.Context, _ string, _ types.BuildType) error {
	if err := f.step("install"); err != nil {
		return err
	}
	if f.onInstall != nil {
		f.onInstall()
	}
	return nil
}

type testEnv struct {
	service      Service
	system       *fakeSystem
	buildTool    *fakeBuildTool
	recipeFolder string
	cacheRoot    string
}

func newTestEnv(t *testing.T, host types.HostInfo) testEnv {
	t.Helper()
	cacheRoot := t.TempDir()
	system := &fakeSystem{}
	buildTool := &fakeBuildTool{version: "3.25.0"}
	info := adapters.NewPackageInfoFileAdapter()
	return testEnv{
		service: Service{
			Recipes:    adapters.NewRecipeFileAdapter(),
			Host:       fakeHost{info: host},
			System:     system,
			BuildTool:  buildTool,
			Files:      adapters.NewFileCopyAdapter(),
			Sources:    adapters.NewSourceTreeAdapter(),
			Cache:      adapters.NewPackageCacheAdapter(cacheRoot, info),
			Info:       info,
			Generators: adapters.NewGeneratorAdapter(),
		},
		system:       system,
		buildTool:    buildTool,
		recipeFolder: t.TempDir(),
		cacheRoot:    cacheRoot,
	}
}

func (e testEnv) request(settings types.Settings) RecipeRequest {
	return RecipeRequest{RecipeFolder: e.recipeFolder, Settings: settings}
}

var (
	ubuntuHost  = types.HostInfo{OS: types.OSLinux, Arch: types.ArchX86_64, Distro: "ubuntu", Root: true}
	windowsHost = types.HostInfo{OS: types.OSWindows, Arch: types.ArchX86_64}

	linuxRelease = types.Settings{
		OS:        types.OSLinux,
		Compiler:  "gcc",
		BuildType: types.BuildTypeRelease,
		Arch:      types.ArchX86_64,
	}
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(file), 0644))
	}
}

func boolPtr(value bool) *bool {
	return &value
}
