package model

// Line holds the pre-computed tokens of one line in the deck's line table
type Line struct {
	Tokens []string
	Types  []string
}

// Text returns the concatenated token text of the line
func (l Line) Text() string {
	n := 0
	for _, tok := range l.Tokens {
		n += len(tok)
	}
	buf := make([]byte, 0, n)
	for _, tok := range l.Tokens {
		buf = append(buf, tok...)
	}
	return string(buf)
}

// TypeAt returns the token type of token i, or "plain" if unknown
func (l Line) TypeAt(i int) string {
	if i < 0 || i >= len(l.Types) || l.Types[i] == "" {
		return "plain"
	}
	return l.Types[i]
}

// Deck is a complete walkthrough: the line table shared by every step and
// the ordered steps themselves
type Deck struct {
	Title string
	Lang  string
	Lines []Line
	Steps []Step
}

// Line returns the line for an identity, or an empty line when the
// identity is outside the table
func (d *Deck) Line(id LineID) Line {
	if d == nil || int(id) < 0 || int(id) >= len(d.Lines) {
		return Line{}
	}
	return d.Lines[id]
}

// TokenCount returns how many tokens the line with the given identity has
func (d *Deck) TokenCount(id LineID) int {
	return len(d.Line(id).Tokens)
}

// MaxLineCount returns the largest number of lines in any step
func (d *Deck) MaxLineCount() int {
	longest := 0
	for _, s := range d.Steps {
		if len(s.Lines) > longest {
			longest = len(s.Lines)
		}
	}
	return longest
}
