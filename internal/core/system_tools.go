package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"urf-recipe/internal/types"
)

// ToolsForHost returns the system tools the recipe wants on this host.
// Only Linux hosts whose distribution is listed by a tool qualify.
func ToolsForHost(recipe types.Recipe, host types.HostInfo) []types.SystemTool {
	if !host.IsLinux() {
		return nil
	}
	distro := strings.ToLower(strings.TrimSpace(host.Distro))
	if distro == "" {
		return nil
	}
	var tools []types.SystemTool
	for _, tool := range recipe.SystemTools {
		for _, candidate := range tool.Distros {
			if strings.ToLower(strings.TrimSpace(candidate)) == distro {
				tools = append(tools, tool)
				break
			}
		}
	}
	return tools
}

// ToolSatisfied reports whether an installed version meets the tool's
// minimum version. Debian version ordering applies.
func ToolSatisfied(tool types.SystemTool, installed string) (bool, error) {
	if strings.TrimSpace(tool.MinVersion) == "" {
		return true, nil
	}
	have, err := parseDebVersion(installed)
	if err != nil {
		return false, err
	}
	want, err := parseDebVersion(tool.MinVersion)
	if err != nil {
		return false, err
	}
	return !have.LessThan(want), nil
}

func parseDebVersion(value string) (debversion.Version, error) {
	return debversion.NewVersion(strings.TrimSpace(value))
}
