package commands

import (
	"context"
	"os/exec"
	"syscall"
)

// CommandBuilder constructs commands bound to a platform shell.
type CommandBuilder struct {
	platform *Platform
}

// NewCommandBuilder creates a builder for the given platform.
func NewCommandBuilder(platform *Platform) *CommandBuilder {
	return &CommandBuilder{platform: platform}
}

// New creates a command from an argv vector.
// Example: New("go", "build", "./...")
func (b *CommandBuilder) New(args ...string) *Command {
	return b.NewWithContext(context.Background(), args...)
}

// NewWithContext creates a command with a context for cancellation.
func (b *CommandBuilder) NewWithContext(ctx context.Context, args ...string) *Command {
	if len(args) == 0 {
		panic("command requires at least one argument")
	}
	return wrap(exec.CommandContext(ctx, args[0], args[1:]...))
}

// NewShell creates a command interpreted by the platform shell.
// Example: NewShell(ctx, "go test ./... 2>&1")
func (b *CommandBuilder) NewShell(ctx context.Context, cmdStr string) *Command {
	shell, shellArg := b.platform.GetShell()
	return wrap(exec.CommandContext(ctx, shell, shellArg, cmdStr))
}

func wrap(cmd *exec.Cmd) *Command {
	// Own process group so Kill can take down child processes too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return &Command{cmd: cmd}
}
