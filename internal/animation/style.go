package animation

// Style is the visual state of a line or token at one moment
type Style struct {
	Opacity float64
	// Expand is the rendered height as a fraction of one line height. Only
	// meaningful when HasHeight is set; otherwise the natural height is used.
	Expand    float64
	HasHeight bool
}

// Func maps normalized progress to a style
type Func func(t float64) Style

// Empty leaves the element at full opacity and natural height
func Empty(float64) Style {
	return Style{Opacity: 1}
}

// Static holds an element at a fixed opacity and one full line of height
func Static(opacity float64) Func {
	return func(float64) Style {
		return Style{Opacity: opacity, Expand: 1, HasHeight: true}
	}
}

// EnterLine fades a line in after the listing has opened room for it
func EnterLine(from, to float64, rank, count int) Func {
	fade := EnterPhase.Stagger(rank, count)
	return func(t float64) Style {
		return Style{
			Opacity:   Tween(from, to, t, fade),
			Expand:    Tween(0, 1, t, MovePhase),
			HasHeight: true,
		}
	}
}

// ExitLine fades a line out and then collapses the room it occupied
func ExitLine(from, to float64, rank, count int) Func {
	fade := ExitPhase.Stagger(rank, count)
	return func(t float64) Style {
		return Style{
			Opacity:   Tween(from, to, t, fade),
			Expand:    Tween(1, 0, t, MovePhase),
			HasHeight: true,
		}
	}
}

// FadeInFocus raises opacity during the enter phase
func FadeInFocus(from, to float64, rank, count int) Func {
	fade := EnterPhase.Stagger(rank, count)
	return func(t float64) Style {
		return Style{Opacity: Tween(from, to, t, fade)}
	}
}

// FadeOutFocus lowers opacity during the exit phase
func FadeOutFocus(from, to float64, rank, count int) Func {
	fade := ExitPhase.Stagger(rank, count)
	return func(t float64) Style {
		return Style{Opacity: Tween(from, to, t, fade)}
	}
}

// Unfocus dims or undims a line across the whole transition while keeping
// it at one line of height
func Unfocus(from, to float64) Func {
	return func(t float64) Style {
		return Style{
			Opacity:   Tween(from, to, t, WholePhase),
			Expand:    1,
			HasHeight: true,
		}
	}
}
