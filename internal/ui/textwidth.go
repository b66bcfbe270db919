package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut short by Ellipsize
const Ellipsis = "…"

// RuneWidth returns the number of columns a rune occupies. Control
// characters and combining marks take none.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 0)
}

// StringWidth returns the number of columns a string occupies
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s to at most maxWidth columns without splitting a
// wide rune
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	width := 0
	for i, r := range s {
		width += RuneWidth(r)
		if width > maxWidth {
			return s[:i]
		}
	}
	return s
}

// Ellipsize fits s into maxWidth columns, replacing the cut-off tail with
// an ellipsis. Below two columns there is no room for a marker and s is
// simply truncated.
func Ellipsize(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 2 {
		return TruncateToWidth(s, maxWidth)
	}
	return strings.TrimRight(TruncateToWidth(s, maxWidth-1), " ") + Ellipsis
}

// PadStringToWidth pads s with spaces to width columns. A string that is
// already wider is returned unchanged.
func PadStringToWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ExpandTabs replaces tabs with spaces up to the next tab stop. col is the
// display column the text starts at.
func ExpandTabs(s string, col, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += RuneWidth(r)
	}
	return b.String()
}
