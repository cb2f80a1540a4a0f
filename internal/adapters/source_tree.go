package adapters

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/ports"
)

type SourceTreeAdapter struct{}

func NewSourceTreeAdapter() SourceTreeAdapter {
	return SourceTreeAdapter{}
}

// ListSources returns the slash separated paths of every file under root,
// leaving out build output, the staging folder and VCS metadata.
func (a SourceTreeAdapter) ListSources(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe folder is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && shouldSkipSourceDir(rel, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan recipe folder").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func shouldSkipSourceDir(rel string, name string) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	// build/ and package/ are only ours at the top level.
	if rel == name {
		return name == "build" || name == "package"
	}
	return false
}

var _ ports.SourceTreePort = SourceTreeAdapter{}
