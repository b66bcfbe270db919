// Package export writes decks out as static documents
package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
)

// GapMarker stands in for a collapsed run of lines
const GapMarker = "⋯"

// ExportToMarkdown exports a deck to a markdown file, one section per step.
func ExportToMarkdown(deck *model.Deck, filePath string) error {
	var sb strings.Builder
	if err := WriteMarkdown(&sb, deck); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}

	return nil
}

// WriteMarkdown writes every step as a heading followed by a fenced code
// block of its visible lines and a list of the focused ones.
func WriteMarkdown(w io.Writer, deck *model.Deck) error {
	var sb strings.Builder

	if deck.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(deck.Title)
		sb.WriteString("\n\n")
	}

	for i, step := range deck.Steps {
		writeStep(&sb, deck, i, step)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeStep(sb *strings.Builder, deck *model.Deck, index int, step model.Step) {
	fmt.Fprintf(sb, "## %d.", index+1)
	if step.Title != "" {
		sb.WriteString(" ")
		sb.WriteString(step.Title)
	}
	sb.WriteString("\n\n")
	if step.Subtitle != "" {
		sb.WriteString(step.Subtitle)
		sb.WriteString("\n\n")
	}

	sb.WriteString("```")
	sb.WriteString(deck.Lang)
	sb.WriteString("\n")

	var focused []string
	for _, r := range lines.Recordize(step) {
		if r.InsideSkip {
			// A collapsed run is written once, as its gap marker
			if r.IsTransition {
				sb.WriteString(GapMarker)
				sb.WriteString("\n")
			}
			continue
		}
		sb.WriteString(deck.Line(r.ID).Text())
		sb.WriteString("\n")

		if label := focusLabel(r); label != "" {
			focused = append(focused, label)
		}
	}
	sb.WriteString("```\n\n")

	if len(focused) > 0 {
		sb.WriteString("Focus:\n\n")
		for _, f := range focused {
			sb.WriteString("- ")
			sb.WriteString(f)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
}

func focusLabel(r model.LineRecord) string {
	line := "line " + strconv.Itoa(r.LineNumber)
	switch {
	case r.Focus.IsTokens():
		parts := make([]string, 0, r.Focus.Tokens.Len())
		for _, i := range r.Focus.Tokens.Indices() {
			parts = append(parts, strconv.Itoa(i))
		}
		return line + " (tokens " + strings.Join(parts, ", ") + ")"
	case r.Focus.IsLine():
		return line
	}
	return ""
}
