package stage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ExternalCommandFailure an external command or remote call did not succeed
type ExternalCommandFailure struct {
	Command string
	Err     error
}

func (e *ExternalCommandFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

func (e *ExternalCommandFailure) Unwrap() error {
	return e.Err
}

// Runner runs name with args in dir
type Runner func(ctx context.Context, dir, name string, args ...string) error

// RunCommand runs the command with stdout/stderr attached to the terminal
func RunCommand(ctx context.Context, dir, name string, args ...string) error {
	var cmd = exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	var cmdLine = strings.Join(cmd.Args, " ")
	slog.Info("run", "cmd", cmdLine, "dir", dir)
	if err := cmd.Run(); err != nil {
		return &ExternalCommandFailure{Command: cmdLine, Err: err}
	}
	return nil
}
