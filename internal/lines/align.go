package lines

import (
	"slices"
	"sort"

	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// Align pairs the lines of two steps by identity. Pairs are ordered by first
// appearance when reading prev's lines and then next's lines.
func Align(prev, next model.Step) []model.LinePair {
	return alignRecords(Recordize(prev), Recordize(next))
}

// alignRecords joins two record lists into an ordered map keyed by identity.
// A repeated identity within one list keeps its first record.
func alignRecords(prev, next []model.LineRecord) []model.LinePair {
	positions := make(map[model.LineID]int, len(prev)+len(next))
	pairs := make([]model.LinePair, 0, len(prev))

	slot := func(id model.LineID) *model.LinePair {
		pos, ok := positions[id]
		if !ok {
			pos = len(pairs)
			positions[id] = pos
			pairs = append(pairs, model.LinePair{ID: id})
		}
		return &pairs[pos]
	}

	for i := range prev {
		if p := slot(prev[i].ID); p.Prev == nil {
			p.Prev = &prev[i]
		}
	}
	for i := range next {
		if p := slot(next[i].ID); p.Next == nil {
			p.Next = &next[i]
		}
	}

	return pairs
}

// DisplayOrder returns the indices of pairs in the order the lines are
// drawn. Lines keep the document order of one side, prev or next when after
// is set; a line missing from that side is placed after the line that
// precedes it on its own side.
func DisplayOrder(pairs []model.LinePair, after bool) []int {
	base, other := sideOf(false, after), sideOf(true, after)

	order := make([]int, 0, len(pairs))
	atLine := make(map[int]int, len(pairs)) // line number on the other side -> pair index
	var missing []int

	for i, p := range pairs {
		if r := other(p); r != nil {
			atLine[r.LineNumber] = i
		}
		if base(p) != nil {
			order = append(order, i)
		} else {
			missing = append(missing, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return base(pairs[order[a]]).LineNumber < base(pairs[order[b]]).LineNumber
	})
	sort.SliceStable(missing, func(a, b int) bool {
		return other(pairs[missing[a]]).LineNumber < other(pairs[missing[b]]).LineNumber
	})

	for _, i := range missing {
		at := 0
		for n := other(pairs[i]).LineNumber - 1; n >= 1; n-- {
			before, ok := atLine[n]
			if !ok {
				continue
			}
			if pos := slices.Index(order, before); pos >= 0 {
				at = pos + 1
				break
			}
		}
		order = slices.Insert(order, at, i)
	}
	return order
}

// sideOf returns an accessor for the next record when next is set,
// otherwise for the prev record. flip swaps the side.
func sideOf(flip, next bool) func(model.LinePair) *model.LineRecord {
	if flip != next {
		return func(p model.LinePair) *model.LineRecord { return p.Next }
	}
	return func(p model.LinePair) *model.LineRecord { return p.Prev }
}
