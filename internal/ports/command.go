package ports

import "context"

type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunnerPort executes external tools. A non-nil error is returned
// whenever the command did not exit with status zero.
type CommandRunnerPort interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}
