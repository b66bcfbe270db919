package lines

import "github.com/pstuifzand/tui-codesurfer/internal/model"

// FadeList is the top-to-bottom roster of lines that start or stop a fade.
// A line's rank in the list staggers its animation against the others.
type FadeList struct {
	ids   []model.LineID
	ranks map[model.LineID]int
}

func newFadeList(pairs []model.LinePair, qualifies func(model.LinePair) bool) FadeList {
	fl := FadeList{ranks: make(map[model.LineID]int)}
	for _, p := range pairs {
		if !qualifies(p) {
			continue
		}
		if _, seen := fl.ranks[p.ID]; seen {
			continue
		}
		fl.ranks[p.ID] = len(fl.ids)
		fl.ids = append(fl.ids, p.ID)
	}
	return fl
}

// Rank returns the 0-based position of id in the list, or -1
func (fl FadeList) Rank(id model.LineID) int {
	if r, ok := fl.ranks[id]; ok {
		return r
	}
	return -1
}

// Len returns the number of lines in the list
func (fl FadeList) Len() int {
	return len(fl.ids)
}

// IDs returns a copy of the ordered identities
func (fl FadeList) IDs() []model.LineID {
	out := make([]model.LineID, len(fl.ids))
	copy(out, fl.ids)
	return out
}

// FadeOrder scans the aligned pairs and returns the fade-in and fade-out
// rosters
func FadeOrder(pairs []model.LinePair) (fadeIn, fadeOut FadeList) {
	return newFadeList(pairs, isFadeIn), newFadeList(pairs, isFadeOut)
}

// isFadeIn reports whether the line appears, gains whole-line focus, or
// switches into token focus
func isFadeIn(p model.LinePair) bool {
	if p.Prev == nil {
		return true
	}
	if p.Next == nil {
		return false
	}
	prev, next := p.Prev.Focus, p.Next.Focus
	return (!prev.IsLine() && next.IsLine()) ||
		(next.IsTokens() && !prev.IsTokens())
}

// isFadeOut reports whether the line disappears, loses whole-line focus,
// or leaves token focus
func isFadeOut(p model.LinePair) bool {
	if p.Next == nil {
		return true
	}
	if p.Prev == nil {
		return false
	}
	prev, next := p.Prev.Focus, p.Next.Focus
	return (prev.IsLine() && !next.IsLine()) ||
		(prev.IsTokens() && !next.IsTokens())
}
