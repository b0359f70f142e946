package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/flowkit-dev/flowkit/pkg/layout"
)

const (
	AppName       = "flowkit"
	ConfigDirName = "flowkit"
	ConfigFile    = "config.yaml"
)

// Config holds application configuration.
type Config struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Triggers TriggersConfig `yaml:"triggers"`
	Assist   AssistConfig   `yaml:"assist"`
	Build    BuildConfig    `yaml:"build"`
	Scan     ScanConfig     `yaml:"scan"`
}

// LayoutConfig overrides the panel geometry. Zero fields keep their
// defaults. Values are in terminal cells.
type LayoutConfig struct {
	PanelGap                 float64 `yaml:"panelGap"`
	MinRightSidebarWidth     float64 `yaml:"minRightSidebarWidth"`
	MaxRightSidebarWidth     float64 `yaml:"maxRightSidebarWidth"`
	DefaultRightSidebarWidth float64 `yaml:"defaultRightSidebarWidth"`
	MinBottomPanelHeight     float64 `yaml:"minBottomPanelHeight"`
	MaxBottomPanelHeight     float64 `yaml:"maxBottomPanelHeight"`
	DefaultBottomPanelHeight float64 `yaml:"defaultBottomPanelHeight"`
	MinSplitRatio            float64 `yaml:"minSplitRatio"`
	MaxSplitRatio            float64 `yaml:"maxSplitRatio"`
	MaxSidebarComponents     int     `yaml:"maxSidebarComponents"`
	DividerHeight            float64 `yaml:"dividerHeight"`
	StartupPreset            string  `yaml:"startupPreset"`
}

// TriggersConfig controls the automatic panel rules.
type TriggersConfig struct {
	Disabled    []string        `yaml:"disabled"`    // Rule names to turn off
	Preferences map[string]bool `yaml:"preferences"` // Flags consulted by rule conditions
}

// AssistConfig configures the chat assistant.
type AssistConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"apiKeyEnv"` // Environment variable holding the key
	BaseURL   string `yaml:"baseURL"`
}

// BuildConfig overrides the detected build and test commands.
type BuildConfig struct {
	BuildCommand []string `yaml:"buildCommand"`
	TestCommand  []string `yaml:"testCommand"`
}

// ScanConfig holds workspace file listing settings.
type ScanConfig struct {
	MaxDepth    int      `yaml:"maxDepth"`
	ExcludeDirs []string `yaml:"excludeDirs"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			// Terminal-cell geometry; the core defaults are point-based
			PanelGap:                 1,
			MinRightSidebarWidth:     28,
			MaxRightSidebarWidth:     80,
			DefaultRightSidebarWidth: 42,
			MinBottomPanelHeight:     5,
			MaxBottomPanelHeight:     25,
			DefaultBottomPanelHeight: 10,
			DividerHeight:            1,
			StartupPreset:            string(layout.PresetFocused),
		},
		Triggers: TriggersConfig{
			Preferences: map[string]bool{},
		},
		Assist: AssistConfig{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Scan: ScanConfig{
			MaxDepth: 10,
		},
	}
}

// LayoutGeometry maps the overrides onto the core geometry config.
// Unset fields fall back via Normalize.
func (c *Config) LayoutGeometry() layout.Config {
	l := c.Layout
	return layout.Config{
		PanelGap:                 l.PanelGap,
		MinRightSidebarWidth:     l.MinRightSidebarWidth,
		MaxRightSidebarWidth:     l.MaxRightSidebarWidth,
		DefaultRightSidebarWidth: l.DefaultRightSidebarWidth,
		MinBottomPanelHeight:     l.MinBottomPanelHeight,
		MaxBottomPanelHeight:     l.MaxBottomPanelHeight,
		DefaultBottomPanelHeight: l.DefaultBottomPanelHeight,
		MinSplitRatio:            l.MinSplitRatio,
		MaxSplitRatio:            l.MaxSplitRatio,
		MaxSidebarComponents:     l.MaxSidebarComponents,
		DividerHeight:            l.DividerHeight,
	}.Normalize()
}

// APIKey resolves the assistant API key from the configured environment
// variable.
func (c *Config) APIKey() string {
	if c.Assist.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Assist.APIKeyEnv)
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load loads configuration from ~/.config/flowkit/config.yaml. Returns the
// default config when the file does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to ~/.config/flowkit/config.yaml.
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureConfigFile creates the config file with commented defaults if it
// does not exist.
func EnsureConfigFile() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		defaultConfig := `# FlowKit Configuration
layout:
  # Geometry in terminal cells
  panelGap: 1
  defaultRightSidebarWidth: 42
  defaultBottomPanelHeight: 10
  # Layout applied at startup: coding, debugging, testing, reviewing,
  # learning, focused, presenting
  startupPreset: focused

triggers:
  # Rule names to disable, e.g.
  # disabled:
  #   - tests-pass-shows-output
  preferences: {}

assist:
  model: gpt-4o-mini
  apiKeyEnv: OPENAI_API_KEY

build:
  # Override the detected commands, e.g.
  # buildCommand: [make, build]
  # testCommand: [make, check]

scan:
  # Maximum directory depth for the navigator (0 = unlimited)
  maxDepth: 10
  excludeDirs: []
`
		return os.WriteFile(path, []byte(defaultConfig), 0644)
	}

	return nil
}
