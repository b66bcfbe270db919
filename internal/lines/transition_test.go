package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pstuifzand/tui-codesurfer/internal/animation"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lineHeight = 20.0
	tokenCount = 3
	off        = DefaultUnfocusedOpacity
)

func lineByID(t *testing.T, tr *Transition, id int) *LineTransition {
	t.Helper()
	for i := range tr.Lines {
		if tr.Lines[i].Pair.ID == model.LineID(id) {
			return &tr.Lines[i]
		}
	}
	t.Fatalf("line %d not found", id)
	return nil
}

func categories(tr *Transition) map[model.LineID]Category {
	out := map[model.LineID]Category{}
	for _, lt := range tr.Lines {
		out[lt.Pair.ID] = lt.Category
	}
	return out
}

// A, B, C all unfocused, then B focused
func TestFocusSingleLine(t *testing.T) {
	prev := newStep(0, 1, 2)
	next := newStep(0, 1, 2)
	next.Focus[1] = model.LineFocus

	tr := Build(prev, next, DefaultOptions())

	assert.Equal(t, map[model.LineID]Category{0: Static, 1: FocusFadeIn, 2: Static}, categories(tr))

	b := lineByID(t, tr, 1)
	assert.InDelta(t, off, b.LineStyle(0).Opacity, 1e-9)
	assert.InDelta(t, 1.0, b.LineStyle(animation.SettleAt).Opacity, 1e-9)
	assert.False(t, b.TokensAnimated())

	for _, id := range []int{0, 2} {
		lt := lineByID(t, tr, id)
		for _, at := range []float64{0, 0.5, 0.99} {
			s := lt.LineStyle(at)
			assert.InDelta(t, off, s.Opacity, 1e-9)
			assert.Equal(t, 1.0, s.Expand)
		}
	}
}

// A, B, C, D, then lines 2-3 collapse into a gap
func TestCollapseRange(t *testing.T) {
	prev := newStep(0, 1, 2, 3)
	next := withSkip(newStep(0, 1, 2, 3), [2]int{2, 3})

	tr := Build(prev, next, DefaultOptions())

	assert.Equal(t, map[model.LineID]Category{0: Static, 1: SkipEnter, 2: SkipEnter, 3: Static}, categories(tr))

	// B stays as the gap row at full height
	b := lineByID(t, tr, 1)
	for _, at := range []float64{0, 0.5, 0.99} {
		s := b.LineStyle(at)
		assert.InDelta(t, off, s.Opacity, 1e-9)
		assert.True(t, s.HasHeight)
		assert.Equal(t, 1.0, s.Expand)
	}

	// C fades out and collapses
	c := lineByID(t, tr, 2)
	assert.Equal(t, animation.Style{Opacity: off, Expand: 1, HasHeight: true}, c.LineStyle(0))
	assert.Equal(t, animation.Style{Opacity: 0, Expand: 0, HasHeight: true}, c.LineStyle(animation.SettleAt))
	// Collapsing is not a focus change, so nothing is ranked
	assert.Equal(t, -1, c.FadeOutRank)
	assert.Equal(t, 0, tr.FadeOut.Len())

	assert.Equal(t, Shown, b.Visibility(0))
	assert.Equal(t, Hidden, b.Visibility(0.5))
	assert.Equal(t, Hidden, b.Visibility(1))
	assert.Equal(t, Shown, c.Visibility(0))
	assert.Equal(t, Shown, c.Visibility(0.5))
	assert.Equal(t, Hidden, c.Visibility(1))
}

// Token 0 focused, then the whole line
func TestTokenFocusToLineFocus(t *testing.T) {
	prev := newStep(0)
	prev.Focus[0] = model.TokenFocus(0)
	next := newStep(0)
	next.Focus[0] = model.LineFocus

	tr := Build(prev, next, DefaultOptions())
	lt := lineByID(t, tr, 0)

	assert.Equal(t, TokenOnly, lt.Category)
	assert.Equal(t, animation.Style{Opacity: 1}, lt.LineStyle(0.5))
	require.True(t, lt.TokensAnimated())

	for _, at := range []float64{0, 0.3, 0.7, animation.SettleAt} {
		assert.InDelta(t, 1.0, lt.TokenStyle(at, 0).Opacity, 1e-9)
	}
	for _, i := range []int{1, 2} {
		assert.InDelta(t, off, lt.TokenStyle(0, i).Opacity, 1e-9)
		assert.InDelta(t, 1.0, lt.TokenStyle(animation.SettleAt, i).Opacity, 1e-9)
	}

	// Rising tokens follow the fade-in roster
	assert.Equal(t, 0, lt.FadeInRank)
	assert.Equal(t, 1, tr.FadeIn.Len())
	assert.InDelta(t, off, lt.TokenStyle(animation.EnterPhase.Start, 1).Opacity, 1e-9)
}

func TestTokenFocusAtSkipBoundary(t *testing.T) {
	prev := newStep(0, 1, 2)
	prev.Focus[1] = model.TokenFocus(1)
	next := withSkip(newStep(0, 1, 2), [2]int{2, 3})

	tr := Build(prev, next, DefaultOptions())
	marker := lineByID(t, tr, 1)

	require.Equal(t, SkipEnter, marker.Category)
	require.True(t, marker.Pair.Next.IsTransition)

	// Dims towards the unfocused baseline instead of disappearing
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, marker.LineStyle(0))
	assert.InDelta(t, off, marker.LineStyle(animation.SettleAt).Opacity, 1e-9)

	// The focused token fades out with the rest of the line's focus
	assert.InDelta(t, 1.0, marker.TokenStyle(0, 1).Opacity, 1e-9)
	assert.InDelta(t, off, marker.TokenStyle(animation.SettleAt, 1).Opacity, 1e-9)
	assert.InDelta(t, off, marker.TokenStyle(0.5, 0).Opacity, 1e-9)

	// Line 2 is not the gap row: it leaves like an exiting line
	c := lineByID(t, tr, 2)
	assert.Equal(t, SkipEnter, c.Category)
	assert.Equal(t, 0.0, c.LineStyle(animation.SettleAt).Expand)
}

// The gap row moves between the settled opacities of its two records, so
// both ends match the static frames of the steps around it
func TestLineFocusAtSkipBoundary(t *testing.T) {
	t.Run("focused line becomes the gap row", func(t *testing.T) {
		prev := newStep(0, 1, 2)
		prev.Focus[1] = model.LineFocus
		next := withSkip(newStep(0, 1, 2), [2]int{2, 3})

		marker := lineByID(t, Build(prev, next, DefaultOptions()), 1)
		require.Equal(t, SkipEnter, marker.Category)
		require.True(t, marker.Pair.Next.IsTransition)
		assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, marker.LineStyle(0))
		assert.Equal(t, animation.Style{Opacity: off, Expand: 1, HasHeight: true}, marker.LineStyle(animation.SettleAt))
		assert.False(t, marker.TokensAnimated())
	})

	t.Run("gap row expands into a focused line", func(t *testing.T) {
		prev := withSkip(newStep(0, 1, 2), [2]int{2, 3})
		next := newStep(0, 1, 2)
		next.Focus[1] = model.LineFocus

		marker := lineByID(t, Build(prev, next, DefaultOptions()), 1)
		require.Equal(t, SkipExit, marker.Category)
		require.True(t, marker.Pair.Prev.IsTransition)
		assert.Equal(t, animation.Style{Opacity: off, Expand: 1, HasHeight: true}, marker.LineStyle(0))
		assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, marker.LineStyle(animation.SettleAt))
	})

	t.Run("focused gap row stays focused", func(t *testing.T) {
		prev := withSkip(newStep(0, 1, 2), [2]int{2, 3})
		prev.Focus[1] = model.LineFocus
		next := newStep(0, 1, 2)
		next.Focus[1] = model.LineFocus

		marker := lineByID(t, Build(prev, next, DefaultOptions()), 1)
		require.Equal(t, SkipExit, marker.Category)
		for _, at := range []float64{0, 0.5, animation.SettleAt} {
			assert.InDelta(t, 1.0, marker.LineStyle(at).Opacity, 1e-9)
		}
	})
}

func TestStaticTokenFocusIsConstant(t *testing.T) {
	focus := model.TokenFocus(1)
	prev := newStep(0, 1)
	prev.Focus[0] = focus
	next := newStep(0, 1)
	next.Focus[0] = focus

	lt := lineByID(t, Build(prev, next, DefaultOptions()), 0)
	require.Equal(t, Static, lt.Category)
	require.True(t, lt.TokensAnimated())

	for _, at := range []float64{0, 0.3, 0.5, animation.SettleAt, 1} {
		assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, lt.LineStyle(at))
		assert.Equal(t, off, lt.TokenStyle(at, 0).Opacity, "token 0 at t=%.2f", at)
		assert.Equal(t, 1.0, lt.TokenStyle(at, 1).Opacity, "token 1 at t=%.2f", at)
		assert.Equal(t, off, lt.TokenStyle(at, 2).Opacity, "token 2 at t=%.2f", at)
	}
}

func TestExpandRange(t *testing.T) {
	prev := withSkip(newStep(0, 1, 2, 3), [2]int{2, 3})
	next := newStep(0, 1, 2, 3)
	next.Focus[1] = model.LineFocus
	next.Focus[2] = model.TokenFocus(0, 2)

	tr := Build(prev, next, DefaultOptions())

	marker := lineByID(t, tr, 1)
	require.Equal(t, SkipExit, marker.Category)
	assert.InDelta(t, off, marker.LineStyle(0).Opacity, 1e-9)
	assert.InDelta(t, 1.0, marker.LineStyle(animation.SettleAt).Opacity, 1e-9)
	assert.Equal(t, 1.0, marker.LineStyle(0.5).Expand)

	c := lineByID(t, tr, 2)
	require.Equal(t, SkipExit, c.Category)
	// Token focused lines enter visible; their tokens fade in one by one
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 0, HasHeight: true}, c.LineStyle(0))
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, c.LineStyle(animation.SettleAt))
	assert.InDelta(t, off, c.TokenStyle(0, 0).Opacity, 1e-9)
	assert.InDelta(t, 1.0, c.TokenStyle(animation.SettleAt, 0).Opacity, 1e-9)
	assert.InDelta(t, off, c.TokenStyle(animation.SettleAt, 1).Opacity, 1e-9)

	assert.Equal(t, Hidden, c.Visibility(0))
	assert.Equal(t, Shown, c.Visibility(0.5))
	assert.Equal(t, Shown, c.Visibility(1))
}

func TestEnteringAndExitingLines(t *testing.T) {
	prev := newStep(0, 1)
	prev.Focus[1] = model.TokenFocus(0)
	next := newStep(0, 2, 3)
	next.Focus[1] = model.LineFocus
	next.Focus[2] = model.TokenFocus(1)

	tr := Build(prev, next, DefaultOptions())

	exiting := lineByID(t, tr, 1)
	require.Equal(t, Exiting, exiting.Category)
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, exiting.LineStyle(0))
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 0, HasHeight: true}, exiting.LineStyle(animation.SettleAt))
	assert.InDelta(t, 0.0, exiting.TokenStyle(animation.SettleAt, 0).Opacity, 1e-9)

	whole := lineByID(t, tr, 2)
	require.Equal(t, Entering, whole.Category)
	assert.Equal(t, animation.Style{Opacity: 0, Expand: 0, HasHeight: true}, whole.LineStyle(0))
	assert.Equal(t, animation.Style{Opacity: 1, Expand: 1, HasHeight: true}, whole.LineStyle(animation.SettleAt))
	assert.False(t, whole.TokensAnimated())

	partial := lineByID(t, tr, 3)
	require.Equal(t, Entering, partial.Category)
	assert.Equal(t, 1.0, partial.LineStyle(0).Opacity)
	assert.Equal(t, 0.0, partial.TokenStyle(0, 1).Opacity)
	assert.InDelta(t, 1.0, partial.TokenStyle(animation.SettleAt, 1).Opacity, 1e-9)
	assert.InDelta(t, off, partial.TokenStyle(animation.SettleAt, 0).Opacity, 1e-9)

	// Entering lines are staggered top to bottom
	assert.Equal(t, 0, whole.FadeInRank)
	assert.Equal(t, 1, partial.FadeInRank)
	early := whole.LineStyle(0.7).Opacity
	late := partial.TokenStyle(0.7, 1).Opacity
	assert.Greater(t, early, late)
}

func TestFocusFadeOut(t *testing.T) {
	prev := newStep(0, 1)
	prev.Focus[0] = model.LineFocus
	prev.Focus[1] = model.LineFocus
	next := newStep(0, 1)

	tr := Build(prev, next, DefaultOptions())

	for _, lt := range tr.Lines {
		assert.Equal(t, FocusFadeOut, lt.Category)
		assert.Equal(t, animation.Style{Opacity: 1}, lt.LineStyle(0))
		assert.InDelta(t, off, lt.LineStyle(animation.SettleAt).Opacity, 1e-9)
		assert.False(t, lt.LineStyle(0.5).HasHeight)
	}
	// The second line starts fading later
	assert.Greater(t, tr.Lines[1].LineStyle(0.1).Opacity, tr.Lines[0].LineStyle(0.1).Opacity)
}

func TestPersistingTokenSetCountsAsChange(t *testing.T) {
	prev := newStep(0)
	prev.Focus[0] = model.TokenFocus(1)
	next := newStep(0)
	next.Focus[0] = model.TokenFocus(1)

	tr := Build(prev, next, DefaultOptions())
	lt := lineByID(t, tr, 0)

	assert.Equal(t, TokenOnly, lt.Category)
	assert.Equal(t, -1, lt.FadeInRank)
	assert.Equal(t, -1, lt.FadeOutRank)
	for _, at := range []float64{0, 0.5, 1} {
		assert.InDelta(t, 1.0, lt.TokenStyle(at, 1).Opacity, 1e-9)
		assert.InDelta(t, off, lt.TokenStyle(at, 0).Opacity, 1e-9)
	}

	// The very same descriptor is static
	same := Build(prev, prev, DefaultOptions())
	assert.Equal(t, Static, same.Lines[0].Category)
	assert.InDelta(t, off, same.Lines[0].TokenStyle(0.5, 0).Opacity, 1e-9)
}

func TestEveryPairGetsOneCategory(t *testing.T) {
	prev := withSkip(newStep(0, 1, 2, 3, 4, 5), [2]int{4, 5})
	prev.Focus[0] = model.LineFocus
	prev.Focus[2] = model.TokenFocus(0)
	next := withSkip(newStep(6, 0, 2, 3, 4, 7), [2]int{2, 3})
	next.Focus[2] = model.TokenFocus(2)
	next.Focus[5] = model.LineFocus

	tr := Build(prev, next, DefaultOptions())
	pairs := Align(prev, next)

	require.Len(t, tr.Lines, len(pairs))
	for i, lt := range tr.Lines {
		assert.Equal(t, pairs[i].ID, lt.Pair.ID)
		assert.GreaterOrEqual(t, int(lt.Category), int(Static))
		assert.LessOrEqual(t, int(lt.Category), int(TokenOnly))
		assert.NotEqual(t, "unknown", lt.Category.String())
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	prev := withSkip(newStep(0, 1, 2, 3), [2]int{3, 4})
	prev.Focus[1] = model.TokenFocus(0, 1)
	next := newStep(3, 0, 1, 5)
	next.Focus[0] = model.LineFocus

	first := Build(prev, next, DefaultOptions())
	second := Build(prev, next, DefaultOptions())

	for _, at := range []float64{0, 0.12, 0.5, 0.77, 0.999} {
		if diff := cmp.Diff(first.Styles(at, lineHeight), second.Styles(at, lineHeight)); diff != "" {
			t.Errorf("styles at %.3f differ (-first +second):\n%s", at, diff)
		}
		if diff := cmp.Diff(first.Styles(at, lineHeight), first.Styles(at, lineHeight)); diff != "" {
			t.Errorf("repeated evaluation at %.3f differs:\n%s", at, diff)
		}
	}
}

func TestStylesScaleHeights(t *testing.T) {
	prev := newStep(0)
	next := newStep(0, 1)

	tr := Build(prev, next, DefaultOptions())

	styles := tr.Styles(animation.SettleAt, lineHeight)
	require.Len(t, styles, 2)
	assert.Equal(t, lineHeight, styles[0].Height)
	assert.Equal(t, lineHeight, styles[1].Height)

	// Unmeasured dimensions pass through as zero heights
	for _, h := range []float64{0, -4} {
		for _, s := range tr.Styles(0.8, h) {
			assert.Equal(t, 0.0, s.Height)
			assert.True(t, s.HasHeight)
		}
	}
}

func TestOptionsAreClamped(t *testing.T) {
	prev := newStep(0)
	next := newStep(0)
	next.Focus[0] = model.LineFocus

	tr := Build(prev, next, Options{UnfocusedOpacity: 3})
	assert.Equal(t, 1.0, tr.Options.UnfocusedOpacity)

	tr = Build(prev, next, Options{UnfocusedOpacity: -1})
	assert.Equal(t, 0.0, tr.Options.UnfocusedOpacity)
	assert.Equal(t, 0.0, tr.Lines[0].LineStyle(0).Opacity)
}

// rendered is what a viewer perceives of one line: its visibility, height
// and the effective opacity of each token
type rendered struct {
	Visible bool
	Height  float64
	Tokens  []float64
}

func render(tr *Transition, t float64) map[model.LineID]rendered {
	out := map[model.LineID]rendered{}
	for i, s := range tr.Styles(t, lineHeight) {
		lt := &tr.Lines[i]
		r := rendered{Visible: s.Visibility == Shown, Height: lineHeight}
		if s.HasHeight {
			r.Height = s.Height
		}
		for tok := 0; tok < tokenCount; tok++ {
			r.Tokens = append(r.Tokens, s.Opacity*lt.TokenStyle(t, tok).Opacity)
		}
		out[s.ID] = r
	}
	return out
}

func TestBoundaryContinuity(t *testing.T) {
	focused := func(step model.Step, index int, f model.Focus) model.Step {
		step.Focus[index] = f
		return step
	}

	cases := map[string]struct {
		prev model.Step
		next model.Step
	}{
		"focus moves": {
			prev: focused(newStep(0, 1, 2), 0, model.LineFocus),
			next: focused(newStep(0, 1, 2), 2, model.LineFocus),
		},
		"lines added and removed": {
			prev: focused(newStep(0, 1, 2), 1, model.TokenFocus(1)),
			next: focused(newStep(3, 0, 2, 4), 3, model.TokenFocus(0, 2)),
		},
		"range collapses": {
			prev: focused(newStep(0, 1, 2, 3, 4), 1, model.LineFocus),
			next: withSkip(newStep(0, 1, 2, 3, 4), [2]int{2, 4}),
		},
		"range expands": {
			prev: withSkip(newStep(0, 1, 2, 3, 4), [2]int{1, 2}, [2]int{4, 5}),
			next: focused(focused(newStep(0, 1, 2, 3, 4), 0, model.LineFocus), 4, model.TokenFocus(2)),
		},
		"token focus shifts": {
			prev: focused(focused(newStep(0, 1), 0, model.TokenFocus(0)), 1, model.LineFocus),
			next: focused(focused(newStep(0, 1), 0, model.TokenFocus(1, 2)), 1, model.TokenFocus(0)),
		},
		"gap row brightens": {
			prev: withSkip(newStep(0, 1, 2), [2]int{2, 3}),
			next: focused(newStep(0, 1, 2), 1, model.LineFocus),
		},
		"disjoint steps": {
			prev: newStep(0, 1),
			next: focused(newStep(2, 3), 0, model.LineFocus),
		},
	}

	opts := DefaultOptions()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tr := Build(tc.prev, tc.next, opts)
			before := render(Build(tc.prev, tc.prev, opts), 0)
			after := render(Build(tc.next, tc.next, opts), 0)

			start := render(tr, 0)
			for id, want := range before {
				if !want.Visible {
					continue
				}
				got, ok := start[id]
				require.True(t, ok)
				assertRendered(t, want, got, "line %d at t=0", id)
			}

			for _, at := range []float64{animation.SettleAt, 0.999, 1} {
				end := render(tr, at)
				for id, want := range after {
					if !want.Visible {
						continue
					}
					got, ok := end[id]
					require.True(t, ok)
					assertRendered(t, want, got, "line %d at t=%.3f", id, at)
				}
			}
		})
	}
}

func assertRendered(t *testing.T, want, got rendered, msg string, args ...interface{}) {
	t.Helper()
	assert.True(t, got.Visible, append([]interface{}{msg + ": visible"}, args...)...)
	assert.InDelta(t, want.Height, got.Height, 1e-9, append([]interface{}{msg + ": height"}, args...)...)
	require.Len(t, got.Tokens, len(want.Tokens))
	for i := range want.Tokens {
		assert.InDelta(t, want.Tokens[i], got.Tokens[i], 1e-9, append([]interface{}{msg + ": token %d"}, append(args, i)...)...)
	}
}
