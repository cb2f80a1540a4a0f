package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"urf-recipe/internal/types"
)

// forcedDependencyOptions are applied on top of whatever the recipe
// declares. spdlog is always consumed header-only.
var forcedDependencyOptions = map[string]map[string]string{
	"spdlog": {"header_only": "True"},
}

// ConfigureDependencies returns the effective per-requirement options. The
// recipe's own declarations are copied, then forced options override them.
func ConfigureDependencies(ctx context.Context, recipe types.Recipe) map[string]map[string]string {
	result := map[string]map[string]string{}
	for dep, opts := range recipe.DependencyOptions {
		result[dep] = copyOptions(opts)
	}
	for dep, opts := range forcedDependencyOptions {
		if _, ok := result[dep]; !ok {
			result[dep] = map[string]string{}
		}
		for key, value := range opts {
			result[dep][key] = value
		}
	}
	log.Ctx(ctx).Debug().Strs("dependencies", sortedKeys(result)).Msg("dependency options configured")
	return result
}

func copyOptions(opts map[string]string) map[string]string {
	out := make(map[string]string, len(opts))
	for key, value := range opts {
		out[key] = value
	}
	return out
}

func sortedKeys(m map[string]map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
