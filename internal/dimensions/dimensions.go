// Package dimensions measures how much room a deck needs and keeps the last
// known measurement around while the container is being resized.
package dimensions

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// Dimensions are the measured sizes shared by every step of a deck. Units
// are whatever the renderer measures in; the terminal player uses cells.
type Dimensions struct {
	LineHeight      float64
	ContentWidth    float64
	ContentHeight   float64
	ContainerWidth  float64
	ContainerHeight float64
}

// Measured reports whether a usable line height is known
func (d Dimensions) Measured() bool {
	return d.LineHeight > 0 && !math.IsNaN(d.LineHeight) && !math.IsInf(d.LineHeight, 0)
}

// Provider supplies dimensions on demand
type Provider interface {
	Dimensions() Dimensions
}

// Static is a Provider with fixed dimensions
type Static Dimensions

// Dimensions returns the fixed dimensions
func (s Static) Dimensions() Dimensions {
	return Dimensions(s)
}

// StepDimensions are the per-step measurements
type StepDimensions struct {
	LineHeight     float64
	ContentWidth   float64
	CodeHeight     float64
	PaddingTop     float64
	PaddingBottom  float64
	SkippedRows    []int
	TransitionRows int
}

// Measurer measures decks for a container of a given size
type Measurer struct {
	ContainerWidth  int
	ContainerHeight int
	LineHeight      float64
	// TitleHeight is the room a step title or subtitle takes, margins
	// included
	TitleHeight float64
	// Gutter is the width reserved for line numbers, zero when hidden
	Gutter int
	// TabWidth is the widest a tab can render
	TabWidth int
}

// NewMeasurer creates a measurer for a terminal of width x height cells
func NewMeasurer(width, height int) Measurer {
	return Measurer{
		ContainerWidth:  width,
		ContainerHeight: height,
		LineHeight:      1,
		TitleHeight:     2,
		TabWidth:        4,
	}
}

// MeasureStep measures a single step of the deck
func (m Measurer) MeasureStep(deck *model.Deck, step model.Step) StepDimensions {
	sd := StepDimensions{
		LineHeight:     m.LineHeight,
		SkippedRows:    lines.SkippedRows(step),
		TransitionRows: lines.TransitionRows(step),
		PaddingTop:     m.LineHeight,
		PaddingBottom:  m.LineHeight,
	}
	if step.Title != "" {
		sd.PaddingTop = m.TitleHeight
	}
	if step.Subtitle != "" {
		sd.PaddingBottom = m.TitleHeight
	}

	longest := 0
	for _, id := range step.Lines {
		text := deck.Line(id).Text()
		w := runewidth.StringWidth(text) + strings.Count(text, "\t")*m.TabWidth
		if w > longest {
			longest = w
		}
	}
	sd.ContentWidth = float64(longest + m.Gutter)

	// Every collapsed run still shows one gap row
	visible := len(step.Lines) - len(sd.SkippedRows) + sd.TransitionRows
	sd.CodeHeight = float64(visible) * m.LineHeight * 2
	return sd
}

// Measure measures every step and combines them into deck-wide dimensions,
// taking the maximum of each size across steps
func (m Measurer) Measure(deck *model.Deck) (Dimensions, []StepDimensions) {
	d := Dimensions{
		ContainerWidth:  float64(m.ContainerWidth),
		ContainerHeight: float64(m.ContainerHeight),
	}
	if deck == nil {
		return d, nil
	}

	steps := make([]StepDimensions, len(deck.Steps))
	codeHeight := 0.0
	for i, step := range deck.Steps {
		sd := m.MeasureStep(deck, step)
		steps[i] = sd
		d.LineHeight = math.Max(d.LineHeight, sd.LineHeight)
		d.ContentWidth = math.Max(d.ContentWidth, sd.ContentWidth)
		codeHeight = math.Max(codeHeight, sd.CodeHeight)
	}
	d.ContentHeight = codeHeight + d.ContainerHeight
	return d, steps
}
