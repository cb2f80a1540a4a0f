package ports

import (
	"context"

	"urf-recipe/internal/types"
)

type ConfigureRequest struct {
	SourceDir   string
	BuildDir    string
	Definitions []types.Definition
}

// BuildToolPort drives the external build system through its fixed
// configure, build, test and install sequence.
type BuildToolPort interface {
	Version(ctx context.Context) (string, error)
	Configure(ctx context.Context, req ConfigureRequest) error
	Build(ctx context.Context, buildDir string, buildType types.BuildType, jobs int) error
	Test(ctx context.Context, buildDir string, buildType types.BuildType) error
	Install(ctx context.Context, buildDir string, buildType types.BuildType) error
}
