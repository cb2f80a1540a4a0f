package core

import "urf-recipe/internal/types"

// HeaderPatterns are packaged on every platform.
var HeaderPatterns = []string{"*.hpp", "*.h"}

var binaryPatterns = map[types.OS][]string{
	types.OSLinux:   {"*.so", "*.a"},
	types.OSWindows: {"*.dll", "*.lib"},
	types.OSMacos:   {"*.dylib", "*.a"},
}

// PackagePatterns returns the file patterns copied from the staging folder
// into the package folder for a host OS: headers always, plus exactly one
// family of binary artifacts.
func PackagePatterns(hostOS types.OS) []string {
	patterns := append([]string(nil), HeaderPatterns...)
	return append(patterns, binaryPatterns[hostOS]...)
}

// BinaryPatterns returns only the binary artifact patterns for a host OS.
func BinaryPatterns(hostOS types.OS) []string {
	return append([]string(nil), binaryPatterns[hostOS]...)
}
