package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/ports"
)

// AptAdapter queries and installs Debian packages. Commands are prefixed
// with "sudo -n" when the process is not root and Sudo is enabled.
type AptAdapter struct {
	Runner ports.CommandRunnerPort
	Root   bool
	Sudo   bool
}

func NewAptAdapter(runner ports.CommandRunnerPort, root bool, sudo bool) AptAdapter {
	return AptAdapter{Runner: runner, Root: root, Sudo: sudo}
}

func (a AptAdapter) Installed(ctx context.Context, name string) (string, bool, error) {
	if strings.TrimSpace(name) == "" {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}
	result, err := a.Runner.Run(ctx, ports.Command{
		Name: "dpkg-query",
		Args: []string{"-W", "-f=${Status} ${Version}", name},
	})
	if err != nil {
		// dpkg-query exits 1 for unknown packages.
		if result.ExitCode == 1 {
			return "", false, nil
		}
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to query " + name).
			WithCause(err)
	}
	version, ok := parseDpkgStatus(string(result.Stdout))
	return version, ok, nil
}

func (a AptAdapter) Install(ctx context.Context, name string, update bool) error {
	if strings.TrimSpace(name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}
	env := []string{"DEBIAN_FRONTEND=noninteractive"}
	if update {
		if _, err := a.Runner.Run(ctx, a.command(env, "apt-get", "update")); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("apt-get update failed").
				WithCause(err)
		}
	}
	if _, err := a.Runner.Run(ctx, a.command(env, "apt-get", "install", "-y", name)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-get install " + name + " failed").
			WithCause(err)
	}
	return nil
}

func (a AptAdapter) command(env []string, name string, args ...string) ports.Command {
	if !a.Root && a.Sudo {
		return ports.Command{Name: "sudo", Args: append([]string{"-n", name}, args...), Env: env}
	}
	return ports.Command{Name: name, Args: args, Env: env}
}

// parseDpkgStatus reads "install ok installed 1.15-2" style output.
func parseDpkgStatus(output string) (string, bool) {
	fields := strings.Fields(output)
	if len(fields) < 4 || fields[2] != "installed" {
		return "", false
	}
	return fields[3], true
}

var _ ports.SystemPackagePort = AptAdapter{}
