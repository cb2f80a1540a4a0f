package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"urf-recipe/internal/types"
)

func TestConfigureDependenciesForcesHeaderOnlySpdlog(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]map[string]string
		shared  bool
	}{
		{name: "no declared options, shared", shared: true},
		{name: "no declared options, static", shared: false},
		{
			name:    "recipe tries to disable header only",
			options: map[string]map[string]string{"spdlog": {"header_only": "False", "wchar_support": "True"}},
			shared:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := DefaultRecipe()
			recipe.DependencyOptions = tt.options
			recipe.DefaultOptions = types.Options{Shared: tt.shared}

			got := ConfigureDependencies(context.Background(), recipe)
			assert.Equal(t, "True", got["spdlog"]["header_only"])
		})
	}
}

func TestConfigureDependenciesKeepsOtherOptions(t *testing.T) {
	recipe := DefaultRecipe()
	recipe.DependencyOptions = map[string]map[string]string{
		"spdlog": {"wchar_support": "True"},
		"eigen":  {"MPL2_only": "True"},
	}

	got := ConfigureDependencies(context.Background(), recipe)
	assert.Equal(t, "True", got["spdlog"]["wchar_support"])
	assert.Equal(t, "True", got["eigen"]["MPL2_only"])

	// The recipe's own map is not mutated.
	_, mutated := recipe.DependencyOptions["spdlog"]["header_only"]
	assert.False(t, mutated)
}
