package adapters

import (
	_ "crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

const (
	PackageInfoFileName = "package-info.yaml"
	ManifestFileName    = "manifest.txt"
)

type PackageInfoFileAdapter struct{}

func NewPackageInfoFileAdapter() PackageInfoFileAdapter {
	return PackageInfoFileAdapter{}
}

func (a PackageInfoFileAdapter) WritePackageInfo(folder string, info types.PackageInfo) error {
	path, err := ensureFolderPath(folder, PackageInfoFileName)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(info)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode package info").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write package info").
			WithCause(err)
	}
	return nil
}

func (a PackageInfoFileAdapter) ReadPackageInfo(folder string) (types.PackageInfo, error) {
	data, err := os.ReadFile(filepath.Join(folder, PackageInfoFileName))
	if err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package info not found").
			WithCause(err)
	}
	var info types.PackageInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package info").
			WithCause(err)
	}
	return info, nil
}

func (a PackageInfoFileAdapter) WriteManifest(folder string, files []string) ([]types.ManifestEntry, error) {
	path, err := ensureFolderPath(folder, ManifestFileName)
	if err != nil {
		return nil, err
	}
	entries := make([]types.ManifestEntry, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		rel := filepath.ToSlash(file)
		g.Go(func() error {
			dgst, err := digestFile(filepath.Join(folder, filepath.FromSlash(rel)))
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to digest " + rel).
					WithCause(err)
			}
			entries[i] = types.ManifestEntry{Path: rel, Digest: dgst.String()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	var lines []string
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %s", entry.Path, entry.Digest))
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	return entries, nil
}

func digestFile(path string) (digest.Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return digest.FromReader(file)
}

func ensureFolderPath(folder string, filename string) (string, error) {
	if strings.TrimSpace(folder) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package folder is empty")
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create package folder").
			WithCause(err)
	}
	return filepath.Join(folder, filename), nil
}

var _ ports.PackageInfoPort = PackageInfoFileAdapter{}
