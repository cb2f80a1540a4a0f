package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/adrg/xdg"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

const (
	cacheAppName       = "urf-recipe"
	emptyReferencePart = "_"
)

// DefaultCacheRoot is $XDG_DATA_HOME/urf-recipe/data.
func DefaultCacheRoot() string {
	return filepath.Join(xdg.DataHome, cacheAppName, "data")
}

// PackageCacheAdapter stores exported recipes and built packages under
// <root>/<name>/<version>/<user>/<channel>.
type PackageCacheAdapter struct {
	Root string
	Info ports.PackageInfoPort
}

func NewPackageCacheAdapter(root string, info ports.PackageInfoPort) PackageCacheAdapter {
	if strings.TrimSpace(root) == "" {
		root = DefaultCacheRoot()
	}
	return PackageCacheAdapter{Root: root, Info: info}
}

func (a PackageCacheAdapter) ExportFolder(ref types.Reference) string {
	return filepath.Join(a.referenceFolder(ref), "export")
}

func (a PackageCacheAdapter) ExportSourceFolder(ref types.Reference) string {
	return filepath.Join(a.referenceFolder(ref), "export_source")
}

func (a PackageCacheAdapter) PackageFolder(ref types.Reference, packageID string) string {
	return filepath.Join(a.referenceFolder(ref), "package", packageID)
}

func (a PackageCacheAdapter) Lookup(name string, version string) (string, types.PackageInfo, bool, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(version) == "" {
		return "", types.PackageInfo{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name and version are required")
	}
	pattern := filepath.Join(a.Root, name, version, "*", "*", "package", "*", PackageInfoFileName)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", types.PackageInfo{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to search package cache").
			WithCause(err)
	}
	sort.Strings(matches)
	for _, match := range matches {
		folder := filepath.Dir(match)
		info, err := a.Info.ReadPackageInfo(folder)
		if err != nil {
			return "", types.PackageInfo{}, false, err
		}
		return folder, info, true, nil
	}
	return "", types.PackageInfo{}, false, nil
}

func (a PackageCacheAdapter) Store(ref types.Reference, packageID string, info types.PackageInfo) (string, error) {
	if strings.TrimSpace(packageID) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package id is empty")
	}
	folder := a.PackageFolder(ref, packageID)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create package folder").
			WithCause(err)
	}
	if err := a.Info.WritePackageInfo(folder, info); err != nil {
		return "", err
	}
	return folder, nil
}

func (a PackageCacheAdapter) referenceFolder(ref types.Reference) string {
	return filepath.Join(a.Root, ref.Name, ref.Version, referencePart(ref.User), referencePart(ref.Channel))
}

func referencePart(value string) string {
	if strings.TrimSpace(value) == "" {
		return emptyReferencePart
	}
	return value
}

var _ ports.PackageCachePort = PackageCacheAdapter{}
