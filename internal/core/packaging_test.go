package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"urf-recipe/internal/types"
)

func TestPackagePatternsPerPlatform(t *testing.T) {
	tests := []struct {
		os   types.OS
		want []string
	}{
		{types.OSLinux, []string{"*.hpp", "*.h", "*.so", "*.a"}},
		{types.OSWindows, []string{"*.hpp", "*.h", "*.dll", "*.lib"}},
		{types.OSMacos, []string{"*.hpp", "*.h", "*.dylib", "*.a"}},
		{types.OS("Android"), []string{"*.hpp", "*.h"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.os), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, PackagePatterns(tt.os)); diff != "" {
				t.Fatalf("unexpected patterns (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPackagePatternsNeverMixFamilies(t *testing.T) {
	linux := PackagePatterns(types.OSLinux)
	windows := PackagePatterns(types.OSWindows)
	for _, p := range BinaryPatterns(types.OSWindows) {
		assert.NotContains(t, linux, p)
	}
	for _, p := range BinaryPatterns(types.OSLinux) {
		assert.NotContains(t, windows, p)
	}
}

func TestPackagePatternsDoNotAliasGlobals(t *testing.T) {
	patterns := PackagePatterns(types.OSLinux)
	patterns[0] = "mutated"
	assert.Equal(t, "*.hpp", HeaderPatterns[0])
}
