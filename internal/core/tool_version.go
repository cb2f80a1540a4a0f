package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/types"
)

// ParseToolVersion extracts the version from output such as
// "cmake version 3.25.0".
func ParseToolVersion(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		for i, field := range fields {
			if field == "version" && i+1 < len(fields) {
				return fields[i+1], nil
			}
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("tool version not found in output")
}

// ToolVersionSatisfies reports whether an installed tool version is at least
// the version the build requirement asks for.
func ToolVersionSatisfies(req types.Requirement, installed string) (bool, error) {
	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %s", req.Version))
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid tool requirement: %s", req)).
			WithCause(err)
	}
	version, err := semver.NewVersion(installed)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid tool version: %s", installed)).
			WithCause(err)
	}
	return constraint.Check(version), nil
}
