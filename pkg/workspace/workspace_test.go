package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   Kind
	}{
		{"go module", "go.mod", KindGo},
		{"node package", "package.json", KindNode},
		{"rust crate", "Cargo.toml", KindRust},
		{"make project", "Makefile", KindMake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.marker)

			p := Detect(dir)
			assert.Equal(t, tt.want, p.Kind)
			assert.Equal(t, dir, p.Root)
			assert.Equal(t, filepath.Base(dir), p.Name)
		})
	}

	t.Run("empty directory", func(t *testing.T) {
		p := Detect(t.TempDir())
		assert.Equal(t, KindUnknown, p.Kind)
		assert.Nil(t, p.BuildCommand())
		assert.Nil(t, p.TestCommand())
	})
}

func TestDetectPrefersGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	writeFile(t, root, "go.mod")
	sub := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(sub, 0755))

	p := Detect(sub)
	assert.Equal(t, root, p.Root)
	assert.Equal(t, KindGo, p.Kind)
}

func TestToolchainCommands(t *testing.T) {
	goProj := &Project{Kind: KindGo}
	assert.Equal(t, []string{"go", "build", "./..."}, goProj.BuildCommand())
	assert.Equal(t, []string{"go", "test", "./..."}, goProj.TestCommand())

	nodeProj := &Project{Kind: KindNode}
	assert.Equal(t, []string{"npm", "run", "build"}, nodeProj.BuildCommand())
	assert.Equal(t, []string{"npm", "test"}, nodeProj.TestCommand())
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go")
	writeFile(t, dir, "pkg/core/core.go")
	writeFile(t, dir, "node_modules/dep/index.js")
	writeFile(t, dir, ".hidden")

	p := &Project{Root: dir}
	files, err := p.ListFiles(0, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", filepath.Join("pkg", "core", "core.go")}, files)
}

func TestListFilesMaxDepth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.go")
	writeFile(t, dir, "a/b/c/deep.go")

	p := &Project{Root: dir}
	files, err := p.ListFiles(1, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"top.go"}, files)
}

func TestListFilesExtraExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go")
	writeFile(t, dir, "generated/out.go")

	p := &Project{Root: dir}
	files, err := p.ListFiles(0, []string{"generated"})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.go"}, files)
}
