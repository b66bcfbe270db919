// Package surfer turns a deck and a global progress value into frames that
// a renderer can paint.
package surfer

import (
	"fmt"
	"math"

	"github.com/pstuifzand/tui-codesurfer/internal/dimensions"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"go.uber.org/zap"
)

// Options configure a Surfer
type Options struct {
	// Lines tunes transitions; nil uses lines.DefaultOptions
	Lines       *lines.Options
	ShowNumbers bool
	Dimensions  dimensions.Provider
	Logger      *zap.Logger
}

// Surfer evaluates frames for a deck. Transitions are built lazily, once
// per step pair, and reused for every frame of that pair.
type Surfer struct {
	deck        *model.Deck
	opts        Options
	gutter      int
	transitions map[int]*lines.Transition
	orders      map[orderKey][]int
	logger      *zap.Logger
}

type orderKey struct {
	pair  int
	after bool
}

// New creates a surfer for a deck
func New(deck *model.Deck, opts Options) *Surfer {
	if deck == nil {
		deck = &model.Deck{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Lines == nil {
		defaults := lines.DefaultOptions()
		opts.Lines = &defaults
	}
	if opts.Dimensions == nil {
		opts.Dimensions = dimensions.Static{LineHeight: 1}
	}
	return &Surfer{
		deck:        deck,
		opts:        opts,
		gutter:      len(fmt.Sprint(deck.MaxLineCount())),
		transitions: make(map[int]*lines.Transition),
		orders:      make(map[orderKey][]int),
		logger:      logger,
	}
}

// Deck returns the deck being played
func (s *Surfer) Deck() *model.Deck {
	return s.deck
}

// StepCount returns the number of steps in the deck
func (s *Surfer) StepCount() int {
	return len(s.deck.Steps)
}

// GutterWidth returns the width of the line number column, or zero when
// numbers are hidden
func (s *Surfer) GutterWidth() int {
	if !s.opts.ShowNumbers {
		return 0
	}
	return s.gutter
}

// Clamp limits progress to the playable range [0, steps-1]
func (s *Surfer) Clamp(progress float64) float64 {
	last := float64(s.StepCount() - 1)
	if math.IsNaN(progress) || progress < 0 || last < 0 {
		return 0
	}
	return math.Min(progress, last)
}

// Locate maps a global progress value to a step pair and the progress t
// within it. The final step is reached as the end of the last pair; a deck
// with a single step pairs it with itself.
func (s *Surfer) Locate(progress float64) (pair int, t float64) {
	n := s.StepCount()
	if n <= 1 {
		return 0, 0
	}
	progress = s.Clamp(progress)
	pair = int(math.Floor(progress))
	t = progress - float64(pair)
	if pair >= n-1 {
		return n - 2, 1
	}
	return pair, t
}

// Transition returns the memoized transition of the pair starting at step i
func (s *Surfer) Transition(i int) *lines.Transition {
	if tr, ok := s.transitions[i]; ok {
		return tr
	}
	prev, next := s.pairSteps(i)
	tr := lines.Build(prev, next, *s.opts.Lines)
	s.transitions[i] = tr
	s.logger.Debug("Built transition",
		zap.Int("pair", i),
		zap.Int("lines", len(tr.Lines)),
		zap.Int("fadeIn", tr.FadeIn.Len()),
		zap.Int("fadeOut", tr.FadeOut.Len()))
	return tr
}

// Invalidate drops every memoized transition
func (s *Surfer) Invalidate() {
	s.transitions = make(map[int]*lines.Transition)
	s.orders = make(map[orderKey][]int)
}

// order returns the memoized drawing order of the pair's lines, following
// the previous step before the halfway point and the next step after it
func (s *Surfer) order(pair int, after bool) []int {
	key := orderKey{pair: pair, after: after}
	if o, ok := s.orders[key]; ok {
		return o
	}
	tr := s.Transition(pair)
	pairs := make([]model.LinePair, len(tr.Lines))
	for i := range tr.Lines {
		pairs[i] = tr.Lines[i].Pair
	}
	o := lines.DisplayOrder(pairs, after)
	s.orders[key] = o
	return o
}

func (s *Surfer) pairSteps(i int) (model.Step, model.Step) {
	steps := s.deck.Steps
	if len(steps) == 0 {
		return model.Step{}, model.Step{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(steps)-1 {
		last := steps[len(steps)-1]
		if len(steps) == 1 {
			return last, last
		}
		return steps[len(steps)-2], last
	}
	return steps[i], steps[i+1]
}
