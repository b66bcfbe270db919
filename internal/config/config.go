package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultTheme            = "tokyo-night"
	DefaultUnfocusedOpacity = 0.3
	DefaultStepDuration     = 0.8
	DefaultFPS              = 30
)

// Config holds application configuration
type Config struct {
	Theme            string            `toml:"theme"`
	UnfocusedOpacity float64           `toml:"unfocused_opacity"`
	StepDuration     float64           `toml:"step_duration"` // seconds per step transition
	FPS              int               `toml:"fps"`
	ShowNumbers      bool              `toml:"show_numbers"`
	Settings         map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their defaults
	config := defaultConfig()
	err = toml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Theme == "" {
		config.Theme = DefaultTheme
	}
	if config.Settings == nil {
		config.Settings = make(map[string]string)
	}
	config.sessionSettings = make(map[string]string)

	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Default returns the default configuration
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:            DefaultTheme,
		UnfocusedOpacity: DefaultUnfocusedOpacity,
		StepDuration:     DefaultStepDuration,
		FPS:              DefaultFPS,
		Settings:         make(map[string]string),
		sessionSettings:  make(map[string]string),
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "surf")
	return configDir, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	if c.sessionSettings != nil {
		if val, ok := c.sessionSettings[key]; ok {
			return val
		}
	}

	if c.Settings != nil {
		if val, ok := c.Settings[key]; ok {
			return val
		}
	}

	return ""
}

// GetAll returns all configuration values (both persisted and session)
// Session settings override persisted settings with the same key
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string)

	for k, v := range c.Settings {
		result[k] = v
	}
	for k, v := range c.sessionSettings {
		result[k] = v
	}

	return result
}

// float returns the setting as a float, or fallback when unset or invalid
func (c *Config) float(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(c.Get(key), 64); err == nil {
		return v
	}
	return fallback
}

// Opacity returns the opacity of unfocused lines, clamped to [0, 1]
func (c *Config) Opacity() float64 {
	op := c.float("unfocused_opacity", c.UnfocusedOpacity)
	if math.IsNaN(op) {
		return DefaultUnfocusedOpacity
	}
	return min(1, max(0, op))
}

// Duration returns how long one step transition takes
func (c *Config) Duration() time.Duration {
	secs := c.float("step_duration", c.StepDuration)
	if secs <= 0 {
		secs = DefaultStepDuration
	}
	return time.Duration(secs * float64(time.Second))
}

// FrameInterval returns the time between animation frames
func (c *Config) FrameInterval() time.Duration {
	fps := int(c.float("fps", float64(c.FPS)))
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Numbers reports whether line numbers are shown
func (c *Config) Numbers() bool {
	if v, err := strconv.ParseBool(c.Get("show_numbers")); err == nil {
		return v
	}
	return c.ShowNumbers
}

// Save persists the configuration to the TOML file
// Note: This only persists the Settings map, not session settings
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to a specific file
func (c *Config) SaveTo(filePath string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
