package adapters

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/types"
)

const (
	osReleasePrimary  = "/etc/os-release"
	osReleaseFallback = "/usr/lib/os-release"
)

// HostInfoAdapter detects the host operating system family and, on Linux,
// the distribution ID from os-release.
type HostInfoAdapter struct {
	GOOS         string
	GOARCH       string
	ReleasePaths []string
	Root         func() bool
}

func NewHostInfoAdapter() HostInfoAdapter {
	return HostInfoAdapter{
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		ReleasePaths: []string{osReleasePrimary, osReleaseFallback},
		Root:         func() bool { return os.Geteuid() == 0 },
	}
}

func (a HostInfoAdapter) Detect() (types.HostInfo, error) {
	host := types.HostInfo{OS: HostOS(a.GOOS), Arch: HostArch(a.GOARCH)}
	if a.Root != nil {
		host.Root = a.Root()
	}
	if !host.IsLinux() {
		return host, nil
	}
	for _, path := range a.ReleasePaths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		release, err := readOSRelease(path)
		if err != nil {
			return host, err
		}
		host.Distro = strings.ToLower(release["ID"])
		return host, nil
	}
	return host, nil
}

// HostOS maps a GOOS value to the settings os family.
func HostOS(goos string) types.OS {
	switch goos {
	case "windows":
		return types.OSWindows
	case "darwin":
		return types.OSMacos
	default:
		return types.OSLinux
	}
}

// HostArch maps a GOARCH value to the settings arch.
func HostArch(goarch string) types.Arch {
	switch goarch {
	case "arm64":
		return types.ArchArmv8
	case "arm":
		return types.ArchArmv7
	case "386":
		return types.ArchX86
	default:
		return types.ArchX86_64
	}
}

func readOSRelease(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read os release").
			WithCause(err)
	}
	defer file.Close()

	values := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		if value == "" {
			continue
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse os release").
			WithCause(err)
	}
	return values, nil
}

var _ ports.HostInfoPort = HostInfoAdapter{}
