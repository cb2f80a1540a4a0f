package ports

import "urf-recipe/internal/types"

// PackageCachePort maps references onto folders of the local package cache.
type PackageCachePort interface {
	ExportFolder(ref types.Reference) string
	ExportSourceFolder(ref types.Reference) string
	PackageFolder(ref types.Reference, packageID string) string
	// Lookup finds a stored package for name/version under any user and
	// channel. The bool is false when none is cached.
	Lookup(name string, version string) (string, types.PackageInfo, bool, error)
	Store(ref types.Reference, packageID string, info types.PackageInfo) (string, error)
}

type PackageInfoPort interface {
	WritePackageInfo(folder string, info types.PackageInfo) error
	ReadPackageInfo(folder string) (types.PackageInfo, error)
	// WriteManifest digests the given files, which are relative to folder,
	// and records them in the folder's manifest.
	WriteManifest(folder string, files []string) ([]types.ManifestEntry, error)
}

type GeneratorPort interface {
	Generate(installFolder string, generators []types.Generator, deps []types.ResolvedRequirement) ([]string, error)
}
