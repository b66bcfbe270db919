package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSteps is returned for decks without any step
	ErrNoSteps = errors.New("deck has no steps")
	// ErrUnknownFormat is returned for files with an unsupported extension
	ErrUnknownFormat = errors.New("unknown deck format")
	// ErrUnknownLine is returned when a step refers to a line that is not
	// in the line table
	ErrUnknownLine = errors.New("line not in line table")
	// ErrStepNotFound is returned when a step query matches nothing
	ErrStepNotFound = errors.New("step not found")
)

// Format is a deck file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// DeckStore reads decks from a file
type DeckStore struct {
	FilePath string
}

// NewDeckStore creates a new deck store for the given file path
func NewDeckStore(filePath string) *DeckStore {
	return &DeckStore{
		FilePath: filePath,
	}
}

// Load reads and decodes the deck
func (s *DeckStore) Load() (*model.Deck, error) {
	format, err := FormatFor(s.FilePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Decode(data, format)
}

// FileExists checks if the deck file exists
func (s *DeckStore) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}

// Load reads the deck at path
func Load(path string) (*model.Deck, error) {
	return NewDeckStore(path).Load()
}

// Decode parses deck data in the given format
func Decode(data []byte, format Format) (*model.Deck, error) {
	var df deckFile
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &df)
	case FormatTOML:
		err = toml.Unmarshal(data, &df)
	case FormatYAML:
		err = yaml.Unmarshal(data, &df)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", strings.ToUpper(string(format)), err)
	}

	return df.deck()
}

// ResolveStep finds the step matching query, see model.Deck.FindStep
func ResolveStep(deck *model.Deck, query string) (int, error) {
	i, ok := deck.FindStep(query)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStepNotFound, query)
	}
	return i, nil
}
