package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = ".dropdown/config.json"

const (
	DefaultAccent     = "212"
	DefaultMaxVisible = 8
)

// Config is the demo's persisted state: theming and widget tuning.
// Selections are deliberately not stored; every run starts clean.
type Config struct {
	Accent       string `json:"accent,omitempty"`
	DisableMouse bool   `json:"disable_mouse,omitempty"`
	MaxVisible   int    `json:"max_visible,omitempty"`
}

// AccentColor returns the configured accent, or the stock pink.
func (c *Config) AccentColor() string {
	if c.Accent == "" {
		return DefaultAccent
	}
	return c.Accent
}

// VisibleRows returns the configured menu window size, or the default.
func (c *Config) VisibleRows() int {
	if c.MaxVisible <= 0 {
		return DefaultMaxVisible
	}
	return c.MaxVisible
}

// Path returns the config file location under baseDir. The reload
// watcher watches this path.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk. A missing file is an empty config.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetAccent sets the accent color
func SetAccent(baseDir, accent string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.Accent = accent
	return Save(baseDir, cfg)
}

// SetMaxVisible sets the menu row budget
func SetMaxVisible(baseDir string, n int) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.MaxVisible = n
	return Save(baseDir, cfg)
}
