package adapters

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/core"
	"urf-recipe/internal/ports"
)

// FileCopyAdapter copies files selected by fnmatch patterns from one tree
// into another.
type FileCopyAdapter struct{}

func NewFileCopyAdapter() FileCopyAdapter {
	return FileCopyAdapter{}
}

// Copy walks src and copies every regular file whose slash separated path
// relative to src matches a pattern. With keepPath the relative path is
// recreated under dst, otherwise files land directly in dst. A missing src
// copies nothing.
func (a FileCopyAdapter) Copy(patterns []string, src string, dst string, keepPath bool) ([]string, error) {
	if dst == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("copy destination is empty")
	}
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat copy source").
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("copy source is not a directory: " + src)
	}

	var copied []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if !core.MatchAny(patterns, filepath.ToSlash(rel)) {
			return nil
		}
		target := filepath.Join(dst, filepath.Base(rel))
		if keepPath {
			target = filepath.Join(dst, rel)
		}
		fileInfo, err := d.Info()
		if err != nil {
			return err
		}
		if err := copyFile(path, target, fileInfo.Mode().Perm()); err != nil {
			return err
		}
		copied = append(copied, target)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy files from " + src).
			WithCause(err)
	}
	sort.Strings(copied)
	return copied, nil
}

func (a FileCopyAdapter) CopyFiles(files []string, src string, dst string) ([]string, error) {
	if dst == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("copy destination is empty")
	}
	var copied []string
	for _, file := range files {
		rel := filepath.FromSlash(file)
		if filepath.IsAbs(rel) || strings.HasPrefix(filepath.Clean(rel), "..") {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("file is outside the source folder: " + file)
		}
		source := filepath.Join(src, rel)
		info, err := os.Stat(source)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("file not found: " + file).
				WithCause(err)
		}
		target := filepath.Join(dst, rel)
		if err := copyFile(source, target, info.Mode().Perm()); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to copy " + file).
				WithCause(err)
		}
		copied = append(copied, target)
	}
	return copied, nil
}

func copyFile(src string, dst string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return nil
}

var _ ports.FileCopyPort = FileCopyAdapter{}
