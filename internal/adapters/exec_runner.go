package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urf-recipe/internal/ports"
	"urf-recipe/internal/shared"
)

// ExitCodeNotFound is reported when the executable could not be started.
const ExitCodeNotFound = 127

// ExecRunner runs commands on the local host. When Stream is set, the
// output of every command is copied to it as it is produced.
type ExecRunner struct {
	Stream io.Writer
}

func NewExecRunner(stream io.Writer) ExecRunner {
	return ExecRunner{Stream: stream}
}

func (r ExecRunner) Run(ctx context.Context, command ports.Command) (ports.CommandResult, error) {
	if strings.TrimSpace(command.Name) == "" {
		return ports.CommandResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command name is empty")
	}
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Stream != nil {
		cmd.Stdout = io.MultiWriter(&stdout, r.Stream)
		cmd.Stderr = io.MultiWriter(&stderr, r.Stream)
	}

	log.Ctx(ctx).Debug().
		Str("cmd", command.Name).
		Strs("args", command.Args).
		Str("dir", command.Dir).
		Msg("running command")

	err := cmd.Run()
	result := ports.CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}

	result.ExitCode = 1
	var exitErr *exec.ExitError
	var execErr *exec.Error
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case errors.As(err, &execErr):
		result.ExitCode = ExitCodeNotFound
		return result, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s not found", command.Name)).
			WithCause(err)
	}
	output := append(append([]byte{}, result.Stdout...), result.Stderr...)
	return result, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s failed with exit code %d", command.Name, result.ExitCode)).
		WithCause(shared.CommandError(output, err))
}

var _ ports.CommandRunnerPort = ExecRunner{}
