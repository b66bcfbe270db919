package storage

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// deckFile is the on-disk shape of a deck, shared by every format
type deckFile struct {
	Title string     `json:"title" toml:"title" yaml:"title"`
	Lang  string     `json:"lang" toml:"lang" yaml:"lang"`
	Lines []lineFile `json:"lines" toml:"lines" yaml:"lines"`
	Steps []stepFile `json:"steps" toml:"steps" yaml:"steps"`
}

type lineFile struct {
	Tokens []string `json:"tokens" toml:"tokens" yaml:"tokens"`
	Types  []string `json:"types" toml:"types" yaml:"types"`
}

type stepFile struct {
	Title    string         `json:"title" toml:"title" yaml:"title"`
	Subtitle string         `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Lines    []int          `json:"lines" toml:"lines" yaml:"lines"`
	Focus    map[string]any `json:"focus" toml:"focus" yaml:"focus"`
	SkipRows [][]int        `json:"skip_rows" toml:"skip_rows" yaml:"skip_rows"`
}

func (df *deckFile) deck() (*model.Deck, error) {
	if len(df.Steps) == 0 {
		return nil, ErrNoSteps
	}

	deck := &model.Deck{
		Title: df.Title,
		Lang:  df.Lang,
		Lines: make([]model.Line, len(df.Lines)),
		Steps: make([]model.Step, len(df.Steps)),
	}
	for i, l := range df.Lines {
		deck.Lines[i] = model.Line{Tokens: l.Tokens, Types: l.Types}
	}

	for i, sf := range df.Steps {
		step, err := sf.step(len(deck.Lines))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		deck.Steps[i] = step
	}
	return deck, nil
}

func (sf *stepFile) step(lineCount int) (model.Step, error) {
	step := model.Step{
		Title:    sf.Title,
		Subtitle: sf.Subtitle,
		Lines:    make([]model.LineID, len(sf.Lines)),
	}
	for i, id := range sf.Lines {
		if id < 0 || id >= lineCount {
			return model.Step{}, fmt.Errorf("%w: %d", ErrUnknownLine, id)
		}
		step.Lines[i] = model.LineID(id)
	}

	if len(sf.Focus) > 0 {
		step.Focus = make(map[int]model.Focus, len(sf.Focus))
		for key, value := range sf.Focus {
			index, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if f, ok := decodeFocus(value); ok {
				step.Focus[index] = f
			}
		}
	}

	for _, r := range sf.SkipRows {
		if len(r) != 2 {
			continue
		}
		step.SkipRows = append(step.SkipRows, model.SkipRange{Start: r[0], End: r[1]})
	}
	return step, nil
}

// decodeFocus reads a focus value: true for the whole line, a list of
// token indices for token focus. Anything else means no focus.
func decodeFocus(value any) (model.Focus, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return model.LineFocus, true
		}
	case []any:
		indices := make([]int, 0, len(v))
		for _, item := range v {
			i, ok := toIndex(item)
			if !ok {
				return model.NoFocus, false
			}
			indices = append(indices, i)
		}
		return model.TokenFocus(indices...), true
	}
	return model.NoFocus, false
}

// toIndex converts the number types the decoders produce to a token index
func toIndex(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, n >= 0
	case int64:
		return int(n), n >= 0
	case uint64:
		return int(n), n <= math.MaxInt32
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
