package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/types"
)

var (
	knownOS         = []types.OS{types.OSLinux, types.OSWindows, types.OSMacos}
	knownBuildTypes = []types.BuildType{types.BuildTypeDebug, types.BuildTypeRelease, types.BuildTypeRelWithDebInfo, types.BuildTypeMinSizeRel}
	knownArchs      = []types.Arch{types.ArchX86_64, types.ArchX86, types.ArchArmv8, types.ArchArmv7}
)

var defaultCompilers = map[types.OS]string{
	types.OSLinux:   "gcc",
	types.OSWindows: "Visual Studio",
	types.OSMacos:   "apple-clang",
}

// ResolveSettings fills unset settings from the host. The build type
// defaults to Release.
func ResolveSettings(host types.HostInfo, requested types.Settings) types.Settings {
	settings := requested
	if settings.OS == "" {
		settings.OS = host.OS
	}
	if settings.Arch == "" {
		settings.Arch = host.Arch
	}
	if settings.BuildType == "" {
		settings.BuildType = types.BuildTypeRelease
	}
	if strings.TrimSpace(settings.Compiler) == "" {
		settings.Compiler = defaultCompilers[settings.OS]
	}
	return settings
}

func ValidateSettings(settings types.Settings) error {
	if !contains(knownOS, settings.OS) {
		return invalidSetting("os", string(settings.OS))
	}
	if !contains(knownBuildTypes, settings.BuildType) {
		return invalidSetting("build_type", string(settings.BuildType))
	}
	if !contains(knownArchs, settings.Arch) {
		return invalidSetting("arch", string(settings.Arch))
	}
	if strings.TrimSpace(settings.Compiler) == "" {
		return invalidSetting("compiler", settings.Compiler)
	}
	return nil
}

func invalidSetting(name string, value string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid setting %s: %q", name, value))
}

func contains[T comparable](values []T, value T) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
