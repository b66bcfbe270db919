// Package history remembers where each deck was left off
package history

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const positionsFile = "positions.toml"

// Manager handles loading and saving deck positions to a TOML file
type Manager struct {
	historyDir string
}

// PositionsFile represents the structure of the positions TOML file
type PositionsFile struct {
	Decks map[string]int `toml:"decks"` // absolute deck path -> 0-based step
}

// NewManager creates a new history manager with directory at ~/.local/share/surf/history/
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return NewManagerAt(filepath.Join(homeDir, ".local", "share", "surf", "history"))
}

// NewManagerAt creates a history manager storing its files in dir
func NewManagerAt(historyDir string) (*Manager, error) {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return nil, err
	}

	return &Manager{
		historyDir: historyDir,
	}, nil
}

// Load loads every remembered position
func (m *Manager) Load() (map[string]int, error) {
	filePath := filepath.Join(m.historyDir, positionsFile)

	// If file doesn't exist, return empty map
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, err
	}

	var posFile PositionsFile
	if err := toml.Unmarshal(data, &posFile); err != nil || posFile.Decks == nil {
		// If parse error, return empty and continue (don't fail on corrupted file)
		return map[string]int{}, nil
	}

	return posFile.Decks, nil
}

// Position returns the step the deck at deckPath was left on
func (m *Manager) Position(deckPath string) (int, bool) {
	positions, err := m.Load()
	if err != nil {
		return 0, false
	}
	step, ok := positions[key(deckPath)]
	return step, ok && step >= 0
}

// SavePosition remembers the step the deck at deckPath was left on
func (m *Manager) SavePosition(deckPath string, step int) error {
	positions, err := m.Load()
	if err != nil {
		return err
	}
	positions[key(deckPath)] = step

	data, err := toml.Marshal(PositionsFile{Decks: positions})
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(m.historyDir, positionsFile), data, 0644)
}

// key identifies a deck independently of the working directory
func key(deckPath string) string {
	if abs, err := filepath.Abs(deckPath); err == nil {
		return abs
	}
	return filepath.Clean(deckPath)
}
