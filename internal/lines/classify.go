package lines

import "github.com/pstuifzand/tui-codesurfer/internal/model"

// Category is the kind of transition a line goes through
type Category int

const (
	// Static lines render the same in both steps
	Static Category = iota
	Entering
	Exiting
	// SkipEnter lines become part of a collapsed range
	SkipEnter
	// SkipExit lines leave a collapsed range
	SkipExit
	FocusFadeIn
	FocusFadeOut
	// TokenOnly lines change only at token granularity, or in a way no line
	// level animation covers. Their tokens animate individually.
	TokenOnly
)

var categoryNames = map[Category]string{
	Static:       "static",
	Entering:     "entering",
	Exiting:      "exiting",
	SkipEnter:    "skip-enter",
	SkipExit:     "skip-exit",
	FocusFadeIn:  "focus-fade-in",
	FocusFadeOut: "focus-fade-out",
	TokenOnly:    "token-only",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Classify assigns exactly one category to a line pair. The checks run in
// precedence order: presence, then skip state, then focus.
func Classify(p model.LinePair) Category {
	if isStatic(p) {
		return Static
	}

	switch {
	case p.Prev == nil:
		return Entering
	case p.Next == nil:
		return Exiting
	case !p.Prev.InsideSkip && p.Next.InsideSkip:
		return SkipEnter
	case p.Prev.InsideSkip && !p.Next.InsideSkip:
		return SkipExit
	}

	prev, next := p.Prev.Focus, p.Next.Focus
	switch {
	case !prev.Truthy() && next.IsLine():
		return FocusFadeIn
	case prev.IsLine() && !next.Truthy():
		return FocusFadeOut
	}
	return TokenOnly
}

// isStatic reports whether the line is present in both steps with identical
// focus and skip state. Focus is compared by identity, see model.Focus.
func isStatic(p model.LinePair) bool {
	if p.Prev == nil || p.Next == nil {
		return false
	}
	return p.Prev.Focus == p.Next.Focus && p.Prev.InsideSkip == p.Next.InsideSkip
}

// tokensAnimated reports whether the line needs per-token styles
func tokensAnimated(p model.LinePair) bool {
	return focusOf(p.Prev).IsTokens() || focusOf(p.Next).IsTokens()
}

func focusOf(r *model.LineRecord) model.Focus {
	if r == nil {
		return model.NoFocus
	}
	return r.Focus
}
