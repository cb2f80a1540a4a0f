package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urf-recipe/internal/types"
)

func TestParseToolVersion(t *testing.T) {
	version, err := ParseToolVersion("cmake version 3.28.3\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n")
	require.NoError(t, err)
	assert.Equal(t, "3.28.3", version)

	_, err = ParseToolVersion("command not found")
	require.Error(t, err)
}

func TestToolVersionSatisfies(t *testing.T) {
	req := types.Requirement{Name: "cmake", Version: "3.25.0", Build: true}

	tests := []struct {
		installed string
		want      bool
	}{
		{"3.25.0", true},
		{"3.28.3", true},
		{"4.0.1", true},
		{"3.22.1", false},
	}
	for _, tt := range tests {
		ok, err := ToolVersionSatisfies(req, tt.installed)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, tt.installed)
	}

	_, err := ToolVersionSatisfies(req, "not-a-version")
	require.Error(t, err)
}
