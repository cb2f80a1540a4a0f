package ports

import (
	"context"

	"urf-recipe/internal/types"
)

type SystemPackagePort interface {
	// Installed reports whether the package is installed and, if so, its
	// version.
	Installed(ctx context.Context, name string) (string, bool, error)
	Install(ctx context.Context, name string, update bool) error
}

type HostInfoPort interface {
	Detect() (types.HostInfo, error)
}
