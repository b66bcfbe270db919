package surfer

import (
	"fmt"

	"github.com/pstuifzand/tui-codesurfer/internal/dimensions"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
)

// Token is one token of a frame line. Its opacity is relative to the line.
type Token struct {
	Text    string
	Type    string
	Opacity float64
}

// Line is one evaluated line of a frame
type Line struct {
	lines.LineStyle
	LineNumber int
	Number     string // padded line number, empty when numbers are hidden
	IsMarker   bool   // the line that stands in for a collapsed run
	Tokens     []Token
}

// Hidden reports whether the line is hidden in this frame
func (l Line) Hidden() bool {
	return l.Visibility == lines.Hidden
}

// Rows returns the number of rows the line occupies. Lines without an
// animated height take one full line.
func (l Line) Rows(lineHeight float64) float64 {
	if !l.HasHeight {
		return lineHeight
	}
	return l.Height
}

// Frame is a fully evaluated snapshot of the deck at one progress value
type Frame struct {
	Progress   float64
	Pair       int
	T          float64
	Step       int // the step the frame is closest to
	Title      string
	Subtitle   string
	Dimensions dimensions.Dimensions
	Lines      []Line
}

// Frame evaluates the deck at the given global progress
func (s *Surfer) Frame(progress float64) Frame {
	progress = s.Clamp(progress)
	pair, t := s.Locate(progress)
	dims := s.opts.Dimensions.Dimensions()

	f := Frame{
		Progress:   progress,
		Pair:       pair,
		T:          t,
		Dimensions: dims,
	}
	if s.StepCount() == 0 {
		return f
	}

	f.Step = pair
	if t >= 0.5 && s.StepCount() > 1 {
		f.Step = pair + 1
	}
	step := s.deck.Steps[f.Step]
	f.Title, f.Subtitle = step.Title, step.Subtitle

	tr := s.Transition(pair)
	styles := tr.Styles(t, dims.LineHeight)
	f.Lines = make([]Line, 0, len(styles))
	for _, i := range s.order(pair, f.Step > pair) {
		f.Lines = append(f.Lines, s.frameLine(&tr.Lines[i], styles[i], t))
	}
	return f
}

func (s *Surfer) frameLine(lt *lines.LineTransition, style lines.LineStyle, t float64) Line {
	record := lt.Pair.Any()
	l := Line{
		LineStyle:  style,
		LineNumber: record.LineNumber,
	}
	if s.opts.ShowNumbers {
		l.Number = fmt.Sprintf("%*d", s.gutter, record.LineNumber)
	}

	current := record
	if t > 0 && lt.Pair.Next != nil {
		current = lt.Pair.Next
	}
	l.IsMarker = current.IsTransition

	src := s.deck.Line(lt.Pair.ID)
	l.Tokens = make([]Token, len(src.Tokens))
	for i, text := range src.Tokens {
		l.Tokens[i] = Token{
			Text:    text,
			Type:    src.TypeAt(i),
			Opacity: lt.TokenStyle(t, i).Opacity,
		}
	}
	return l
}
