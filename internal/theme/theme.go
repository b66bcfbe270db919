package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	// Code area colors
	Background tcell.Color
	Text       tcell.Color
	LineNumber tcell.Color
	Gap        tcell.Color

	// Step header and footer colors
	Title    tcell.Color
	Subtitle tcell.Color
	Status   tcell.Color

	// Token colors by token type, Text is used for unknown types
	Tokens map[string]tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// TokenColor returns the color for a token type
func (t *Theme) TokenColor(tokenType string) tcell.Color {
	if c, ok := t.Colors.Tokens[tokenType]; ok {
		return c
	}
	return t.Colors.Text
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background: tcell.ColorDefault,
			Text:       tcell.ColorDefault,
			LineNumber: tcell.ColorDefault,
			Gap:        tcell.ColorDefault,
			Title:      tcell.ColorDefault,
			Subtitle:   tcell.ColorDefault,
			Status:     tcell.ColorDefault,
			Tokens:     map[string]tcell.Color{},
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background: HexToColor("#1a1b26"), // Dark background
			Text:       HexToColor("#c0caf5"), // Light gray-blue
			LineNumber: HexToColor("#3b4261"),
			Gap:        HexToColor("#565f89"), // Comment gray
			Title:      HexToColor("#bb9af7"), // Magenta
			Subtitle:   HexToColor("#9aa5ce"),
			Status:     HexToColor("#565f89"),
			Tokens: map[string]tcell.Color{
				"keyword":     HexToColor("#bb9af7"),
				"string":      HexToColor("#9ece6a"),
				"comment":     HexToColor("#565f89"),
				"function":    HexToColor("#7aa2f7"),
				"number":      HexToColor("#ff9e64"),
				"operator":    HexToColor("#89ddff"),
				"punctuation": HexToColor("#a9b1d6"),
				"type":        HexToColor("#2ac3de"),
				"builtin":     HexToColor("#7dcfff"),
			},
		},
	}
}
