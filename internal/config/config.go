package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides
const (
	EnvOpacity     = "FLOATINGCLOCK_OPACITY"
	EnvAlwaysOnTop = "FLOATINGCLOCK_ALWAYS_ON_TOP"
	EnvVerbose     = "FLOATINGCLOCK_VERBOSE"
	EnvLogDir      = "FLOATINGCLOCK_LOG_DIR"
)

const (
	appDirName      = "FloatingClock"
	configFileName  = "config.json"
	defaultOpacity  = 0.85
	unsetCoordinate = -1
)

// Config holds the overlay settings. It is read at startup and never written
// back: the window position is not persisted between runs.
type Config struct {
	Opacity     float64 `json:"opacity"`
	AlwaysOnTop bool    `json:"always_on_top"`
	StartX      int     `json:"start_x"` // -1 lets the window manager place the window
	StartY      int     `json:"start_y"`
	Verbose     bool    `json:"verbose"`
	LogDir      string  `json:"log_dir,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Opacity:     defaultOpacity,
		AlwaysOnTop: true,
		StartX:      unsetCoordinate,
		StartY:      unsetCoordinate,
	}
}

// DefaultPath returns <UserConfigDir>/FloatingClock/config.json
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the config file at path (defaults when it does not exist), then
// applies a .env file next to the executable and environment overrides.
// An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Use defaults
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}
	cfg.applyEnv()
	cfg.Validate()

	return cfg, nil
}

// resolveEnvPath returns the .env file beside the executable, if any
func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	envPath := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(envPath); err == nil {
		return envPath
	}
	return ""
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOpacity)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Opacity = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAlwaysOnTop)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AlwaysOnTop = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		c.LogDir = v
	}
}

// Validate replaces out-of-range values with defaults
func (c *Config) Validate() {
	if c.Opacity <= 0 || c.Opacity > 1 {
		c.Opacity = defaultOpacity
	}
	if c.StartX < 0 || c.StartY < 0 {
		c.StartX, c.StartY = unsetCoordinate, unsetCoordinate
	}
}

// HasStartPosition reports whether an explicit start position is configured
func (c *Config) HasStartPosition() bool {
	return c.StartX >= 0 && c.StartY >= 0
}
