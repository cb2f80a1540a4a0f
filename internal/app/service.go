package app

import (
	"io"

	"urf-recipe/internal/adapters"
	"urf-recipe/internal/ports"
)

type Service struct {
	Recipes    ports.RecipePort
	Host       ports.HostInfoPort
	System     ports.SystemPackagePort
	BuildTool  ports.BuildToolPort
	Files      ports.FileCopyPort
	Sources    ports.SourceTreePort
	Cache      ports.PackageCachePort
	Info       ports.PackageInfoPort
	Generators ports.GeneratorPort
}

// Config carries the invocation-wide knobs of the adapters.
type Config struct {
	CacheDir string
	// Sudo prefixes system package commands with "sudo -n" when not root.
	Sudo bool
	// Output receives the streamed output of external tools. Nil discards it.
	Output io.Writer
}

func NewService(cfg Config) Service {
	host := adapters.NewHostInfoAdapter()
	runner := adapters.NewExecRunner(cfg.Output)
	info := adapters.NewPackageInfoFileAdapter()
	return Service{
		Recipes:    adapters.NewRecipeFileAdapter(),
		Host:       host,
		System:     adapters.NewAptAdapter(runner, host.Root(), cfg.Sudo),
		BuildTool:  adapters.NewCMakeAdapter(runner),
		Files:      adapters.NewFileCopyAdapter(),
		Sources:    adapters.NewSourceTreeAdapter(),
		Cache:      adapters.NewPackageCacheAdapter(cfg.CacheDir, info),
		Info:       info,
		Generators: adapters.NewGeneratorAdapter(),
	}
}
