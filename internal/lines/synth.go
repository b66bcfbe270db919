package lines

import (
	"github.com/pstuifzand/tui-codesurfer/internal/animation"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// stagger carries a line's ranks in both fade rosters
type stagger struct {
	inRank, inCount   int
	outRank, outCount int
}

func staggerFor(id model.LineID, fadeIn, fadeOut FadeList) stagger {
	return stagger{
		inRank:   fadeIn.Rank(id),
		inCount:  fadeIn.Len(),
		outRank:  fadeOut.Rank(id),
		outCount: fadeOut.Len(),
	}
}

// synthesizer builds the line-level animation for each category
type synthesizer struct {
	off float64 // unfocused opacity
}

// settled is the opacity a line rests at for a given focus
func (s synthesizer) settled(f model.Focus) float64 {
	if f.Truthy() {
		return 1
	}
	return s.off
}

// hiddenTarget is the opacity a disappearing line fades to. Token focused
// lines stay visible because their tokens fade individually.
func hiddenTarget(f model.Focus) float64 {
	if f.IsTokens() {
		return 1
	}
	return 0
}

func (s synthesizer) lineFunc(c Category, p model.LinePair, st stagger) animation.Func {
	switch c {
	case Static:
		return animation.Static(s.settled(p.Prev.Focus))

	case Entering:
		next := p.Next.Focus
		return animation.EnterLine(hiddenTarget(next), s.settled(next), st.inRank, st.inCount)

	case Exiting:
		prev := p.Prev.Focus
		return animation.ExitLine(s.settled(prev), hiddenTarget(prev), st.outRank, st.outCount)

	case SkipEnter:
		prev := p.Prev.Focus
		if !p.Next.IsTransition {
			return animation.ExitLine(s.settled(prev), hiddenTarget(prev), st.outRank, st.outCount)
		}
		// The first line of the collapsed range stays as the gap row
		return animation.Unfocus(s.settled(prev), s.settled(p.Next.Focus))

	case SkipExit:
		next := p.Next.Focus
		if p.Prev.IsTransition {
			return animation.Unfocus(s.settled(p.Prev.Focus), s.settled(next))
		}
		return animation.EnterLine(hiddenTarget(next), s.settled(next), st.inRank, st.inCount)

	case FocusFadeIn:
		return animation.FadeInFocus(s.off, 1, st.inRank, st.inCount)

	case FocusFadeOut:
		return animation.FadeOutFocus(1, s.off, st.outRank, st.outCount)
	}

	return animation.Empty
}

// tokenAnimator interpolates each token of a line between its focus in the
// previous and the next step
type tokenAnimator struct {
	prev, next *model.LineRecord
	off        float64
	fadeIn     animation.Phase
	fadeOut    animation.Phase
}

func newTokenAnimator(p model.LinePair, off float64, st stagger) *tokenAnimator {
	return &tokenAnimator{
		prev:    p.Prev,
		next:    p.Next,
		off:     off,
		fadeIn:  animation.EnterPhase.Stagger(st.inRank, st.inCount),
		fadeOut: animation.ExitPhase.Stagger(st.outRank, st.outCount),
	}
}

// opacity is the resting opacity of token i in the given record. A missing
// record means the line itself enters or exits.
func (a *tokenAnimator) opacity(r *model.LineRecord, i int) float64 {
	if r == nil {
		return 0
	}
	if tokenFocused(r.Focus, i) {
		return 1
	}
	return a.off
}

func (a *tokenAnimator) style(t float64, i int) animation.Style {
	from := a.opacity(a.prev, i)
	to := a.opacity(a.next, i)
	if from < to {
		return animation.Style{Opacity: animation.Tween(from, to, t, a.fadeIn)}
	}
	return animation.Style{Opacity: animation.Tween(from, to, t, a.fadeOut)}
}

func tokenFocused(f model.Focus, i int) bool {
	if f.IsTokens() {
		return f.Tokens.Contains(i)
	}
	return f.Line
}
