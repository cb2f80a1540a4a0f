package core

import (
	_ "crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/opencontainers/go-digest"

	"urf-recipe/internal/types"
)

const packageIDLength = 40

// PackageID derives a stable binary id from the reference, settings,
// options, requirements and dependency options. Map keys are sorted so the
// id does not depend on iteration order.
func PackageID(recipe types.Recipe, settings types.Settings, options types.Options, depOptions map[string]map[string]string) string {
	var builder strings.Builder
	builder.WriteString("[reference]\n")
	builder.WriteString(RecipeReference(recipe).String())
	builder.WriteString("\n[settings]\n")
	for _, name := range recipe.Settings {
		builder.WriteString(fmt.Sprintf("%s=%s\n", name, settingValue(settings, name)))
	}
	builder.WriteString("[options]\n")
	builder.WriteString(fmt.Sprintf("shared=%t\n", options.Shared))
	builder.WriteString("[requires]\n")
	requires := append([]string(nil), recipe.Requires...)
	sort.Strings(requires)
	for _, req := range requires {
		builder.WriteString(req)
		builder.WriteString("\n")
	}
	builder.WriteString("[dependency_options]\n")
	for _, dep := range sortedKeys(depOptions) {
		opts := depOptions[dep]
		keys := make([]string, 0, len(opts))
		for key := range opts {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			builder.WriteString(fmt.Sprintf("%s:%s=%s\n", dep, key, opts[key]))
		}
	}
	return digest.FromString(builder.String()).Encoded()[:packageIDLength]
}

func settingValue(settings types.Settings, name types.SettingName) string {
	switch name {
	case types.SettingOS:
		return string(settings.OS)
	case types.SettingCompiler:
		return settings.Compiler
	case types.SettingBuildType:
		return string(settings.BuildType)
	case types.SettingArch:
		return string(settings.Arch)
	default:
		return ""
	}
}
