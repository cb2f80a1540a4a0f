package adapters

import (
	"context"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/core"
	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

// CMakeAdapter drives cmake and ctest through a command runner.
type CMakeAdapter struct {
	Runner ports.CommandRunnerPort
	CMake  string
	CTest  string
}

func NewCMakeAdapter(runner ports.CommandRunnerPort) CMakeAdapter {
	return CMakeAdapter{Runner: runner, CMake: "cmake", CTest: "ctest"}
}

func (a CMakeAdapter) Version(ctx context.Context) (string, error) {
	result, err := a.Runner.Run(ctx, ports.Command{Name: a.CMake, Args: []string{"--version"}})
	if err != nil {
		return "", err
	}
	return core.ParseToolVersion(string(result.Stdout))
}

func (a CMakeAdapter) Configure(ctx context.Context, req ports.ConfigureRequest) error {
	if req.SourceDir == "" || req.BuildDir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source and build directories are required")
	}
	args := []string{"-S", req.SourceDir, "-B", req.BuildDir}
	for _, def := range req.Definitions {
		args = append(args, "-D"+def.Name+"="+def.Value)
	}
	return a.run(ctx, "configure", a.CMake, args)
}

func (a CMakeAdapter) Build(ctx context.Context, buildDir string, buildType types.BuildType, jobs int) error {
	args := []string{"--build", buildDir, "--config", string(buildType)}
	if jobs > 0 {
		args = append(args, "--parallel", strconv.Itoa(jobs))
	} else {
		args = append(args, "--parallel")
	}
	return a.run(ctx, "build", a.CMake, args)
}

func (a CMakeAdapter) Test(ctx context.Context, buildDir string, buildType types.BuildType) error {
	args := []string{"--test-dir", buildDir, "-C", string(buildType), "--output-on-failure"}
	return a.run(ctx, "test", a.CTest, args)
}

func (a CMakeAdapter) Install(ctx context.Context, buildDir string, buildType types.BuildType) error {
	args := []string{"--install", buildDir, "--config", string(buildType)}
	return a.run(ctx, "install", a.CMake, args)
}

func (a CMakeAdapter) run(ctx context.Context, step string, name string, args []string) error {
	if _, err := a.Runner.Run(ctx, ports.Command{Name: name, Args: args}); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cmake " + step + " failed").
			WithCause(err)
	}
	return nil
}

var _ ports.BuildToolPort = CMakeAdapter{}
