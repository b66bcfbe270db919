package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background string `toml:"background"`
		Text       string `toml:"text"`
		LineNumber string `toml:"line_number"`
		Gap        string `toml:"gap"`
		Title      string `toml:"title"`
		Subtitle   string `toml:"subtitle"`
		Status     string `toml:"status"`
	} `toml:"colors"`
	Tokens map[string]string `toml:"tokens"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "surf", "themes"),
			filepath.Join(home, ".local", "share", "surf", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string, dirs []string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range dirs {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName, getThemePaths())
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	theme := TokyoNight()

	override := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = ParseColorString(value)
		}
	}
	override(&theme.Colors.Background, config.Colors.Background)
	override(&theme.Colors.Text, config.Colors.Text)
	override(&theme.Colors.LineNumber, config.Colors.LineNumber)
	override(&theme.Colors.Gap, config.Colors.Gap)
	override(&theme.Colors.Title, config.Colors.Title)
	override(&theme.Colors.Subtitle, config.Colors.Subtitle)
	override(&theme.Colors.Status, config.Colors.Status)

	for tokenType, value := range config.Tokens {
		if value != "" {
			theme.Colors.Tokens[tokenType] = ParseColorString(value)
		}
	}

	if config.Name != "" {
		theme.Name = config.Name
	}

	return theme
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return theme
}
