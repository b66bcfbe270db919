package lines

import (
	"math"

	"github.com/pstuifzand/tui-codesurfer/internal/animation"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// DefaultUnfocusedOpacity is the opacity of lines outside the focus
const DefaultUnfocusedOpacity = 0.3

// Options tune how transitions are synthesized
type Options struct {
	UnfocusedOpacity float64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{UnfocusedOpacity: DefaultUnfocusedOpacity}
}

// normalized clamps the options into their valid ranges
func (o Options) normalized() Options {
	if math.IsNaN(o.UnfocusedOpacity) {
		o.UnfocusedOpacity = DefaultUnfocusedOpacity
	}
	o.UnfocusedOpacity = math.Max(0, math.Min(1, o.UnfocusedOpacity))
	return o
}

// Visibility is the coarse show/hide class of a line
type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "shown"
}

// LineTransition is the classified transition of one line
type LineTransition struct {
	Pair        model.LinePair
	Category    Category
	FadeInRank  int
	FadeOutRank int

	line   animation.Func
	tokens *tokenAnimator
}

// LineStyle evaluates the line-level animation at progress t
func (lt *LineTransition) LineStyle(t float64) animation.Style {
	return lt.line(t)
}

// TokensAnimated reports whether tokens need individual styles. Static
// token-focused lines report true too; their token styles are constant.
func (lt *LineTransition) TokensAnimated() bool {
	return lt.tokens != nil
}

// TokenStyle evaluates the animation of token i at progress t. Tokens that
// are not animated render with the empty style.
func (lt *LineTransition) TokenStyle(t float64, i int) animation.Style {
	if lt.tokens == nil {
		return animation.Empty(t)
	}
	return lt.tokens.style(t, i)
}

// Visibility resolves whether the line is hidden at progress t.
//
// Settled frames (t <= 0 or t >= 1) and static lines hide every line inside
// a skip range. Mid-transition, only the line that becomes the gap row is
// hidden, so collapsing content stays visible while it animates.
func (lt *LineTransition) Visibility(t float64) Visibility {
	p := lt.Pair
	if lt.Category == Static || t <= 0 || t >= 1 {
		current := p.Any()
		if t >= 1 && p.Next != nil {
			current = p.Next
		}
		if current.InsideSkip {
			return Hidden
		}
		return Shown
	}
	if p.Next != nil && p.Next.IsTransition && p.Next.InsideSkip {
		return Hidden
	}
	return Shown
}

// Transition is the full classification of a step pair. It is immutable and
// safe to evaluate at any progress, any number of times.
type Transition struct {
	Lines   []LineTransition
	FadeIn  FadeList
	FadeOut FadeList
	Options Options
}

// Build aligns, ranks and classifies every line of a step pair
func Build(prev, next model.Step, opts Options) *Transition {
	opts = opts.normalized()
	pairs := Align(prev, next)
	fadeIn, fadeOut := FadeOrder(pairs)
	synth := synthesizer{off: opts.UnfocusedOpacity}

	transitions := make([]LineTransition, len(pairs))
	for i, p := range pairs {
		st := staggerFor(p.ID, fadeIn, fadeOut)
		c := Classify(p)
		lt := LineTransition{
			Pair:        p,
			Category:    c,
			FadeInRank:  st.inRank,
			FadeOutRank: st.outRank,
			line:        synth.lineFunc(c, p, st),
		}
		if tokensAnimated(p) {
			lt.tokens = newTokenAnimator(p, opts.UnfocusedOpacity, st)
		}
		transitions[i] = lt
	}

	return &Transition{
		Lines:   transitions,
		FadeIn:  fadeIn,
		FadeOut: fadeOut,
		Options: opts,
	}
}

// LineStyle is the rendered style of one line in one frame
type LineStyle struct {
	ID         model.LineID
	Category   Category
	Opacity    float64
	Height     float64
	HasHeight  bool
	Visibility Visibility
}

// Styles evaluates every line at progress t. Heights are scaled by
// lineHeight; a zero or unknown line height yields zero heights rather than
// an error.
func (tr *Transition) Styles(t, lineHeight float64) []LineStyle {
	if math.IsNaN(lineHeight) || lineHeight < 0 {
		lineHeight = 0
	}
	styles := make([]LineStyle, len(tr.Lines))
	for i := range tr.Lines {
		lt := &tr.Lines[i]
		s := lt.LineStyle(t)
		styles[i] = LineStyle{
			ID:         lt.Pair.ID,
			Category:   lt.Category,
			Opacity:    s.Opacity,
			HasHeight:  s.HasHeight,
			Visibility: lt.Visibility(t),
		}
		if s.HasHeight {
			styles[i].Height = s.Expand * lineHeight
		}
	}
	return styles
}
