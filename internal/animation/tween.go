// Package animation provides the progress-driven style animations used to
// move between two steps of a walkthrough.
//
// All animations are pure functions of the normalized progress t in [0, 1].
// Every animation has settled by SettleAt, so a transition rendered at any
// t >= SettleAt is identical to the static "after" frame.
package animation

import "math"

// Phase is a sub-interval of normalized progress
type Phase struct {
	Start float64
	End   float64
}

// SettleAt is the progress after which no animation changes anymore
const SettleAt = 0.95

// Phases of a transition. Lines leave first, then the listing collapses and
// expands, then lines arrive.
var (
	ExitPhase  = Phase{Start: 0, End: 0.3}
	MovePhase  = Phase{Start: 0.3, End: 0.65}
	EnterPhase = Phase{Start: 0.65, End: SettleAt}
	WholePhase = Phase{Start: 0, End: SettleAt}
)

// staggerRatio is the share of a phase spent on delaying successive items
const staggerRatio = 0.4

// Span returns the length of the phase
func (p Phase) Span() float64 {
	return p.End - p.Start
}

// Stagger returns the window of item rank out of count items animating in
// this phase. Later items start later; the last one ends with the phase.
// A negative rank or a single item gets the whole phase.
func (p Phase) Stagger(rank, count int) Phase {
	if rank < 0 || count <= 1 {
		return p
	}
	if rank >= count {
		rank = count - 1
	}
	span := p.Span()
	step := span * staggerRatio / float64(count-1)
	start := p.Start + float64(rank)*step
	return Phase{Start: start, End: math.Min(start+span*(1-staggerRatio), p.End)}
}

// Progress maps t to the eased local progress within the phase, clamped to
// [0, 1]
func (p Phase) Progress(t float64) float64 {
	if t <= p.Start {
		return 0
	}
	if t >= p.End || p.Span() <= 0 {
		return 1
	}
	return easeInOutCubic((t - p.Start) / p.Span())
}

// Tween interpolates from -> to over the phase with cubic easing
func Tween(from, to, t float64, p Phase) float64 {
	return lerp(from, to, p.Progress(t))
}

// lerp performs linear interpolation between a and b. The endpoints are
// returned exactly so settled styles compare equal to static ones.
func lerp(a, b, t float64) float64 {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a + (b-a)*t
}

// easeInOutCubic applies smooth easing function
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
