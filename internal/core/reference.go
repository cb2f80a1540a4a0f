package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/types"
)

// ParseRequirement splits a raw "name/version" string into a Requirement.
// The version must be a valid semantic version.
func ParseRequirement(raw string, build bool) (types.Requirement, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
	}
	name := strings.TrimSpace(parts[0])
	version := strings.TrimSpace(parts[1])
	if name == "" || version == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement version: %s", raw)).
			WithCause(err)
	}
	return types.Requirement{Name: name, Version: version, Build: build}, nil
}

// ParseRequirements returns runtime requirements followed by build
// requirements, in declaration order.
func ParseRequirements(recipe types.Recipe) ([]types.Requirement, error) {
	seen := map[string]struct{}{}
	var result []types.Requirement
	add := func(raws []string, build bool) error {
		for _, raw := range raws {
			req, err := ParseRequirement(raw, build)
			if err != nil {
				return err
			}
			if _, ok := seen[req.Name]; ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("duplicate requirement: %s", req.Name))
			}
			seen[req.Name] = struct{}{}
			result = append(result, req)
		}
		return nil
	}
	if err := add(recipe.Requires, false); err != nil {
		return nil, err
	}
	if err := add(recipe.BuildRequires, true); err != nil {
		return nil, err
	}
	return result, nil
}

func RecipeReference(recipe types.Recipe) types.Reference {
	return types.Reference{
		Name:    recipe.Name,
		Version: recipe.Version,
		User:    recipe.User,
		Channel: recipe.Channel,
	}
}

// FindRequirement returns the requirement with the given name.
func FindRequirement(reqs []types.Requirement, name string) (types.Requirement, bool) {
	for _, req := range reqs {
		if req.Name == name {
			return req, true
		}
	}
	return types.Requirement{}, false
}
