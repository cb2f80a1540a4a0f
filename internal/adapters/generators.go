package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/shared"
	"urf-recipe/internal/types"
)

const (
	BuildInfoFileName  = "urfbuildinfo.cmake"
	ActivateFileName   = "activate.sh"
	DeactivateFileName = "deactivate.sh"
	generatedHeader    = "# Generated by urf-recipe. Do not edit.\n"
)

// GeneratorAdapter writes the files that let CMake and a shell find the
// resolved requirements.
type GeneratorAdapter struct{}

func NewGeneratorAdapter() GeneratorAdapter {
	return GeneratorAdapter{}
}

func (a GeneratorAdapter) Generate(installFolder string, generators []types.Generator, deps []types.ResolvedRequirement) ([]string, error) {
	if strings.TrimSpace(installFolder) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("install folder is empty")
	}
	if err := os.MkdirAll(installFolder, 0755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create install folder").
			WithCause(err)
	}
	files := map[string]string{}
	var order []string
	add := func(name string, content string) {
		if _, ok := files[name]; !ok {
			order = append(order, name)
		}
		files[name] = content
	}
	for _, generator := range generators {
		switch generator {
		case types.GeneratorCMake:
			add(BuildInfoFileName, cmakeBuildInfo(deps))
		case types.GeneratorCMakeFindPackage:
			for _, dep := range deps {
				if isBuildTool(dep.Requirement) {
					continue
				}
				add("Find"+dep.Requirement.Name+".cmake", findPackageModule(dep))
			}
		case types.GeneratorVirtualEnv:
			activate, deactivate := virtualEnvScripts(deps)
			add(ActivateFileName, activate)
			add(DeactivateFileName, deactivate)
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown generator: %s", generator))
		}
	}

	var written []string
	for _, name := range order {
		path := filepath.Join(installFolder, name)
		mode := os.FileMode(0644)
		if strings.HasSuffix(name, ".sh") {
			mode = 0755
		}
		if err := os.WriteFile(path, []byte(files[name]), mode); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write " + name).
				WithCause(err)
		}
		written = append(written, path)
	}
	return written, nil
}

// isBuildTool reports requirements that are executables rather than
// libraries to link against.
func isBuildTool(req types.Requirement) bool {
	return req.Build && req.Name == "cmake"
}

func cmakeBuildInfo(deps []types.ResolvedRequirement) string {
	var includeDirs, libDirs, libs, roots, names []string
	for _, dep := range deps {
		names = append(names, dep.Requirement.Name)
		if !dep.Cached() {
			continue
		}
		roots = append(roots, cmakePath(dep.Folder))
		includeDirs = append(includeDirs, depDirs(dep.Folder, dep.Info.CppInfo.IncludeDirs)...)
		libDirs = append(libDirs, depDirs(dep.Folder, dep.Info.CppInfo.LibDirs)...)
		libs = append(libs, dep.Info.CppInfo.Libs...)
	}
	var b strings.Builder
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "set(URF_DEPENDENCIES %s)\n", cmakeList(names))
	fmt.Fprintf(&b, "set(URF_INCLUDE_DIRS %s)\n", cmakeList(includeDirs))
	fmt.Fprintf(&b, "set(URF_LIB_DIRS %s)\n", cmakeList(libDirs))
	fmt.Fprintf(&b, "set(URF_LIBS %s)\n", cmakeList(libs))
	for _, dep := range deps {
		if dep.Cached() {
			fmt.Fprintf(&b, "set(URF_%s_ROOT %q)\n", strings.ToUpper(dep.Requirement.Name), cmakePath(dep.Folder))
		}
	}
	if len(roots) > 0 {
		fmt.Fprintf(&b, "list(PREPEND CMAKE_PREFIX_PATH %s)\n", cmakeList(roots))
	}
	b.WriteString("list(APPEND CMAKE_MODULE_PATH ${CMAKE_CURRENT_LIST_DIR})\n")
	return b.String()
}

func findPackageModule(dep types.ResolvedRequirement) string {
	name := dep.Requirement.Name
	target := name + "::" + name
	var b strings.Builder
	b.WriteString(generatedHeader)
	if !dep.Cached() {
		fmt.Fprintf(&b, "find_package(%s %s CONFIG)\n", name, dep.Requirement.Version)
		return b.String()
	}
	includeDirs := depDirs(dep.Folder, dep.Info.CppInfo.IncludeDirs)
	libDirs := depDirs(dep.Folder, dep.Info.CppInfo.LibDirs)
	fmt.Fprintf(&b, "if(NOT TARGET %s)\n", target)
	fmt.Fprintf(&b, "  add_library(%s INTERFACE IMPORTED)\n", target)
	fmt.Fprintf(&b, "  set_target_properties(%s PROPERTIES\n", target)
	fmt.Fprintf(&b, "    INTERFACE_INCLUDE_DIRECTORIES %q\n", strings.Join(includeDirs, ";"))
	fmt.Fprintf(&b, "    INTERFACE_LINK_DIRECTORIES %q\n", strings.Join(libDirs, ";"))
	fmt.Fprintf(&b, "    INTERFACE_LINK_LIBRARIES %q)\n", strings.Join(dep.Info.CppInfo.Libs, ";"))
	b.WriteString("endif()\n")
	fmt.Fprintf(&b, "set(%s_FOUND TRUE)\n", name)
	fmt.Fprintf(&b, "set(%s_VERSION %s)\n", name, dep.Requirement.Version)
	fmt.Fprintf(&b, "set(%s_INCLUDE_DIRS %s)\n", name, cmakeList(includeDirs))
	fmt.Fprintf(&b, "set(%s_LIBRARIES %s)\n", name, target)
	return b.String()
}

func virtualEnvScripts(deps []types.ResolvedRequirement) (string, string) {
	var paths, libPaths []string
	for _, dep := range deps {
		if !dep.Cached() {
			continue
		}
		for _, dir := range dep.Info.CppInfo.BinDirs {
			paths = shared.AppendUnique(paths, filepath.Join(dep.Folder, dir))
		}
		for _, entry := range dep.Info.Env["PATH"] {
			paths = shared.AppendUnique(paths, entry)
		}
		for _, dir := range dep.Info.CppInfo.LibDirs {
			libPaths = shared.AppendUnique(libPaths, filepath.Join(dep.Folder, dir))
		}
	}
	sep := string(os.PathListSeparator)

	var activate strings.Builder
	activate.WriteString("#!/bin/sh\n")
	activate.WriteString(generatedHeader)
	activate.WriteString("export URF_OLD_PATH=\"$PATH\"\n")
	activate.WriteString("export URF_OLD_LD_LIBRARY_PATH=\"${LD_LIBRARY_PATH:-}\"\n")
	if len(paths) > 0 {
		fmt.Fprintf(&activate, "export PATH=\"%s%s$PATH\"\n", strings.Join(paths, sep), sep)
	}
	if len(libPaths) > 0 {
		fmt.Fprintf(&activate, "export LD_LIBRARY_PATH=\"%s${LD_LIBRARY_PATH:+%s$LD_LIBRARY_PATH}\"\n", strings.Join(libPaths, sep), sep)
	}

	var deactivate strings.Builder
	deactivate.WriteString("#!/bin/sh\n")
	deactivate.WriteString(generatedHeader)
	deactivate.WriteString("export PATH=\"$URF_OLD_PATH\"\n")
	deactivate.WriteString("export LD_LIBRARY_PATH=\"$URF_OLD_LD_LIBRARY_PATH\"\n")
	deactivate.WriteString("unset URF_OLD_PATH URF_OLD_LD_LIBRARY_PATH\n")
	return activate.String(), deactivate.String()
}

func depDirs(folder string, dirs []string) []string {
	var out []string
	for _, dir := range dirs {
		out = append(out, cmakePath(filepath.Join(folder, dir)))
	}
	return out
}

func cmakePath(path string) string {
	return shared.ForwardSlashes(path)
}

func cmakeList(values []string) string {
	if len(values) == 0 {
		return `""`
	}
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, fmt.Sprintf("%q", value))
	}
	return strings.Join(quoted, " ")
}

var _ ports.GeneratorPort = GeneratorAdapter{}
