package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithOutputCapturesStdout(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	result, err := builder.New("echo", "hello").RunWithOutput()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRunWithOutputReportsExitCode(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	errCalls := 0
	completeCode := -1
	cmd := builder.NewShell(context.Background(), "exit 3").
		OnError(func(error) { errCalls++ }).
		OnComplete(func(code int) { completeCode = code })

	result, err := cmd.RunWithOutput()
	require.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, 3, completeCode)
	assert.Zero(t, errCalls)
}

func TestRunAndStreamDeliversLines(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	var lines []string
	done := make(chan int, 1)

	cmd := builder.NewShell(context.Background(), "echo one; echo two").
		StreamOutput().
		OnStdout(func(line string) { lines = append(lines, line) }).
		OnComplete(func(code int) { done <- code })

	require.NoError(t, cmd.RunAndStream())

	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("command did not complete")
	}
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestRunAndStreamFailureFiresCompleteOnly(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	errCalls := 0
	completeCalls := 0
	completeCode := -1
	cmd := builder.NewShell(context.Background(), "exit 7").
		OnError(func(error) { errCalls++ }).
		OnComplete(func(code int) {
			completeCalls++
			completeCode = code
		})

	require.Error(t, cmd.RunAndStream())
	assert.Zero(t, errCalls)
	assert.Equal(t, 1, completeCalls)
	assert.Equal(t, 7, completeCode)
}

func TestRunAndStreamUnrunnableFiresErrorOnly(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	errCalls := 0
	completeCalls := 0
	cmd := builder.New("no-such-binary-for-sure").
		OnError(func(error) { errCalls++ }).
		OnComplete(func(int) { completeCalls++ })

	require.Error(t, cmd.RunAndStream())
	assert.Equal(t, 1, errCalls)
	assert.Zero(t, completeCalls)
}

func TestWithWorkingDir(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())
	dir := t.TempDir()

	result, err := builder.New("pwd").WithWorkingDir(dir).RunWithOutput()
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}

func TestStreamHandlerCollectsInOrder(t *testing.T) {
	var seen []string
	h := NewStreamHandler(func(line string) { seen = append(seen, line) })

	h.HandleStdout("building")
	h.HandleStderr("warning: something")

	assert.Equal(t, []string{"building", "warning: something"}, h.Lines())
	assert.Equal(t, []string{"building", "warning: something"}, seen)

	h.Clear()
	assert.Empty(t, h.Lines())
}

func TestRunAndStreamIntoStreamHandler(t *testing.T) {
	builder := NewCommandBuilder(NewPlatform())

	h := NewStreamHandler(nil)
	cmd := builder.NewShell(context.Background(), "echo out; echo err 1>&2").
		StreamOutput().
		OnStdout(h.HandleStdout).
		OnStderr(h.HandleStderr)

	require.NoError(t, cmd.RunAndStream())
	assert.ElementsMatch(t, []string{"out", "err"}, h.Lines())
}

func TestPlatformShell(t *testing.T) {
	p := NewPlatform()
	shell, arg := p.GetShell()
	assert.NotEmpty(t, shell)
	assert.NotEmpty(t, arg)
}
