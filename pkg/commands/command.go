package commands

import (
	"bufio"
	"bytes"
	"errors"
	"os/exec"
	"syscall"
	"time"
)

// Command is a single external process invocation. Options and callbacks are
// set through the fluent methods before one of the Run variants is called.
type Command struct {
	cmd *exec.Cmd

	streamOutput bool
	workingDir   string

	onStdout   func(string)
	onStderr   func(string)
	onComplete func(int)
	onError    func(error)
}

// Result holds the outcome of a completed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Error    error
	Duration time.Duration
}

// WithWorkingDir sets the working directory.
func (c *Command) WithWorkingDir(dir string) *Command {
	c.workingDir = dir
	c.cmd.Dir = dir
	return c
}

// StreamOutput marks the command for line-by-line streaming.
func (c *Command) StreamOutput() *Command {
	c.streamOutput = true
	return c
}

// OnStdout sets the per-line stdout callback.
func (c *Command) OnStdout(fn func(string)) *Command {
	c.onStdout = fn
	return c
}

// OnStderr sets the per-line stderr callback.
func (c *Command) OnStderr(fn func(string)) *Command {
	c.onStderr = fn
	return c
}

// OnComplete sets the callback invoked with the exit code once the process
// ran to completion, successful or not. Exactly one of OnComplete and
// OnError fires per run.
func (c *Command) OnComplete(fn func(int)) *Command {
	c.onComplete = fn
	return c
}

// OnError sets the callback invoked when the command could not be started
// or run. A process that ran and exited non-zero reports through OnComplete
// instead.
func (c *Command) OnError(fn func(error)) *Command {
	c.onError = fn
	return c
}

// RunWithOutput runs the command to completion and captures stdout and
// stderr. The result is non-nil even on failure.
func (c *Command) RunWithOutput() (*Result, error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	c.cmd.Stdout = &stdoutBuf
	c.cmd.Stderr = &stderrBuf

	start := time.Now()
	err := c.cmd.Run()

	result := &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: exitCodeOf(err),
		Error:    err,
		Duration: time.Since(start),
	}

	if err != nil && !ranToCompletion(err) {
		c.fail(err)
		return result, err
	}
	if c.onComplete != nil {
		c.onComplete(result.ExitCode)
	}
	return result, err
}

// RunAndStream runs the command, delivering output lines to the OnStdout and
// OnStderr callbacks as they arrive. Blocks until the process exits; callers
// wanting async behavior run it in a goroutine.
func (c *Command) RunAndStream() error {
	stdoutPipe, err := c.cmd.StdoutPipe()
	if err != nil {
		c.fail(err)
		return err
	}
	stderrPipe, err := c.cmd.StderrPipe()
	if err != nil {
		c.fail(err)
		return err
	}

	if err := c.cmd.Start(); err != nil {
		c.fail(err)
		return err
	}

	stdoutDone := make(chan struct{})
	stderrDone := make(chan struct{})

	go func() {
		defer close(stdoutDone)
		scanner := bufio.NewScanner(stdoutPipe)
		for scanner.Scan() {
			if c.onStdout != nil {
				c.onStdout(scanner.Text())
			}
		}
	}()
	go func() {
		defer close(stderrDone)
		scanner := bufio.NewScanner(stderrPipe)
		for scanner.Scan() {
			if c.onStderr != nil {
				c.onStderr(scanner.Text())
			}
		}
	}()

	// Drain both pipes before Wait closes them.
	<-stdoutDone
	<-stderrDone

	err = c.cmd.Wait()
	if err != nil && !ranToCompletion(err) {
		c.fail(err)
		return err
	}
	if c.onComplete != nil {
		c.onComplete(exitCodeOf(err))
	}
	return err
}

// Kill terminates the process and its children. The builder puts every
// command in its own process group, so the negative pid reaches all of them.
func (c *Command) Kill() error {
	if c.cmd != nil && c.cmd.Process != nil {
		return syscall.Kill(-c.cmd.Process.Pid, syscall.SIGKILL)
	}
	return nil
}

func (c *Command) fail(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ranToCompletion distinguishes a process that ran and exited non-zero from
// one that never ran.
func ranToCompletion(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
