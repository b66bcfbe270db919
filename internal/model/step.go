// Package model contains the data model for code walkthrough decks
package model

import "sort"

// LineID identifies "the same logical line" across steps. It indexes the
// deck's line table.
type LineID int

// TokenSet is an ordered set of token indices within a line
type TokenSet struct {
	indices []int
	members map[int]bool
}

// NewTokenSet creates a token set from the given indices, dropping duplicates
func NewTokenSet(indices ...int) *TokenSet {
	ts := &TokenSet{members: make(map[int]bool, len(indices))}
	for _, i := range indices {
		if ts.members[i] {
			continue
		}
		ts.members[i] = true
		ts.indices = append(ts.indices, i)
	}
	sort.Ints(ts.indices)
	return ts
}

// Contains reports whether token i is part of the set
func (ts *TokenSet) Contains(i int) bool {
	if ts == nil {
		return false
	}
	return ts.members[i]
}

// Indices returns a copy of the token indices in ascending order
func (ts *TokenSet) Indices() []int {
	if ts == nil {
		return nil
	}
	out := make([]int, len(ts.indices))
	copy(out, ts.indices)
	return out
}

// Len returns the number of tokens in the set
func (ts *TokenSet) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.indices)
}

// Focus is a per-line focus descriptor: absent (zero value), the whole
// line, or a set of tokens.
//
// Focus values are comparable with ==. Token sets compare by pointer, so
// two steps that focus the same tokens through different sets still count
// as a focus change.
type Focus struct {
	Line   bool
	Tokens *TokenSet
}

// NoFocus is the absent focus descriptor
var NoFocus = Focus{}

// LineFocus focuses the whole line
var LineFocus = Focus{Line: true}

// TokenFocus focuses the given tokens of a line
func TokenFocus(indices ...int) Focus {
	return Focus{Tokens: NewTokenSet(indices...)}
}

// IsLine reports whether the whole line, and not a token subset, is focused
func (f Focus) IsLine() bool {
	return f.Line && f.Tokens == nil
}

// IsTokens reports whether the focus is token-granular. Tokens take
// precedence over Line when both are set.
func (f Focus) IsTokens() bool {
	return f.Tokens != nil
}

// Truthy reports whether the line has any focus at all. An empty token set
// still counts as focused.
func (f Focus) Truthy() bool {
	return f.Line || f.Tokens != nil
}

// SkipRange is an inclusive range of collapsed line positions. Bounds are
// compared against 1-based line positions.
type SkipRange struct {
	Start int
	End   int
}

// Contains reports whether the 1-based position pos lies in the range.
// Inverted ranges contain nothing.
func (r SkipRange) Contains(pos int) bool {
	return r.Start <= r.End && pos >= r.Start && pos <= r.End
}

// Step is one frame of a walkthrough: an ordered listing plus focus and
// skip metadata
type Step struct {
	Title    string
	Subtitle string
	Lines    []LineID
	Focus    map[int]Focus
	SkipRows []SkipRange
}

// FocusAt returns the focus descriptor for the zero-based line index
func (s Step) FocusAt(index int) Focus {
	if s.Focus == nil {
		return NoFocus
	}
	return s.Focus[index]
}

// LineRecord is the derived per-line view of a step
type LineRecord struct {
	ID           LineID
	LineNumber   int // 1-based display line number
	Focus        Focus
	InsideSkip   bool
	IsTransition bool // first line of a contiguous skipped run
}

// LinePair joins the records of one line identity across two steps. Prev is
// nil for entering lines, Next is nil for exiting lines.
type LinePair struct {
	ID   LineID
	Prev *LineRecord
	Next *LineRecord
}

// Any returns whichever record exists, preferring Prev
func (p LinePair) Any() *LineRecord {
	if p.Prev != nil {
		return p.Prev
	}
	return p.Next
}
