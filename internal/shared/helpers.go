// Package shared provides common utility functions used across multiple
// packages in the urf-recipe codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// ForwardSlashes rewrites Windows path separators so the value can be
// handed to CMake unchanged on any host.
func ForwardSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// AppendUnique appends value to values unless an equal entry is present.
func AppendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
