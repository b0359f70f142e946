package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowkit-dev/flowkit/pkg/commands"
	"github.com/flowkit-dev/flowkit/pkg/workspace"
)

func TestNewConsolePanelLoadsGitStatus(t *testing.T) {
	dir := t.TempDir()
	builder := commands.NewCommandBuilder(commands.NewPlatform())
	if _, err := builder.New("git", "init", dir).RunWithOutput(); err != nil {
		t.Skip("git unavailable")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x\n"), 0o644))

	c := NewConsolePanel(nil, &App{project: &workspace.Project{Root: dir}})

	assert.Contains(t, c.gitStatus, "notes.txt")
}

func TestNewConsolePanelOutsideRepository(t *testing.T) {
	c := NewConsolePanel(nil, &App{project: &workspace.Project{Root: t.TempDir()}})

	assert.Empty(t, c.gitStatus)
}
