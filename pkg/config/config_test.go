package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeometryNormalizes(t *testing.T) {
	cfg := Default()
	geo := cfg.LayoutGeometry()

	assert.Equal(t, 1.0, geo.PanelGap)
	assert.Equal(t, 42.0, geo.DefaultRightSidebarWidth)
	assert.Equal(t, 10.0, geo.DefaultBottomPanelHeight)
	// Unset fields fall back to core defaults
	assert.Equal(t, 0.2, geo.MinSplitRatio)
	assert.Equal(t, 0.8, geo.MaxSplitRatio)
	assert.Equal(t, 3, geo.MaxSidebarComponents)
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `layout:
  defaultRightSidebarWidth: 60
  startupPreset: debugging
triggers:
  disabled:
    - tests-pass-shows-output
assist:
  model: gpt-4o
scan:
  maxDepth: 3
  excludeDirs:
    - tmp
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.Layout.DefaultRightSidebarWidth)
	assert.Equal(t, "debugging", cfg.Layout.StartupPreset)
	assert.Equal(t, []string{"tests-pass-shows-output"}, cfg.Triggers.Disabled)
	assert.Equal(t, "gpt-4o", cfg.Assist.Model)
	assert.Equal(t, 3, cfg.Scan.MaxDepth)
	assert.Equal(t, []string{"tmp"}, cfg.Scan.ExcludeDirs)
	// Untouched sections keep their defaults
	assert.Equal(t, "OPENAI_API_KEY", cfg.Assist.APIKeyEnv)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: [not a map"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestAPIKeyFromEnv(t *testing.T) {
	cfg := Default()
	cfg.Assist.APIKeyEnv = "FLOWKIT_TEST_KEY"
	t.Setenv("FLOWKIT_TEST_KEY", "sk-test")

	assert.Equal(t, "sk-test", cfg.APIKey())

	cfg.Assist.APIKeyEnv = ""
	assert.Equal(t, "", cfg.APIKey())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  maxDepth: 1\n"), 0644))

	loaded := make(chan *Config, 1)
	w, err := Watch(path, func(cfg *Config) {
		select {
		case loaded <- cfg:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("scan:\n  maxDepth: 7\n"), 0644))

	select {
	case cfg := <-loaded:
		assert.Equal(t, 7, cfg.Scan.MaxDepth)
	case <-time.After(3 * time.Second):
		t.Fatal("config reload not observed")
	}
}
