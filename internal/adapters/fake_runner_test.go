package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urf-recipe/internal/ports"
)

// recordingRunner records every command and answers from a table keyed by
// "name arg0 arg1...". Prefix keys match any command that starts with them.
type recordingRunner struct {
	commands  []ports.Command
	responses map[string]ports.CommandResult
	failures  map[string]bool
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{
		responses: map[string]ports.CommandResult{},
		failures:  map[string]bool{},
	}
}

func (r *recordingRunner) Run(_ context.Context, cmd ports.Command) (ports.CommandResult, error) {
	r.commands = append(r.commands, cmd)
	line := commandLine(cmd)
	for key, failed := range r.failures {
		if failed && strings.HasPrefix(line, key) {
			return ports.CommandResult{ExitCode: 1}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(key + " failed")
		}
	}
	for key, result := range r.responses {
		if strings.HasPrefix(line, key) {
			if result.ExitCode != 0 {
				return result, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(key + " exited non-zero")
			}
			return result, nil
		}
	}
	return ports.CommandResult{}, nil
}

func (r *recordingRunner) lines() []string {
	var out []string
	for _, cmd := range r.commands {
		out = append(out, commandLine(cmd))
	}
	return out
}

func commandLine(cmd ports.Command) string {
	return strings.TrimSpace(cmd.Name + " " + strings.Join(cmd.Args, " "))
}
