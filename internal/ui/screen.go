package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-codesurfer/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme

	closeOnce sync.Once
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	return NewScreenFrom(tcellScreen, t)
}

// NewScreenFrom wraps an existing tcell screen, initializing it
func NewScreenFrom(tcellScreen tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if t == nil {
		t = theme.Default()
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.closeOnce.Do(s.tcellScreen.Fini)
	return nil
}

// Clear fills the entire screen with the theme background
func (s *Screen) Clear() {
	s.tcellScreen.SetStyle(s.BackgroundStyle())
	s.tcellScreen.Clear()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style and
// returns the number of columns used. Wide runes take two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x+col, y, r, style)
		col += w
	}
	return col
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// DrawStringEllipsis draws a string, ending it with an ellipsis if it
// exceeds maxWidth
func (s *Screen) DrawStringEllipsis(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, Ellipsize(text, maxWidth), style)
}

// FillRow paints a full row with spaces in the given style
func (s *Screen) FillRow(y int, style tcell.Style) {
	for x := 0; x < s.width; x++ {
		s.SetCell(x, y, ' ', style)
	}
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// PostEvent queues an event for the event loop. It is safe to call from
// other goroutines.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.tcellScreen.PostEvent(ev)
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// Theme-aware style methods

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}

// TokenStyle returns the style for a token of the given type drawn with
// the given opacity
func (s *Screen) TokenStyle(tokenType string, opacity float64) tcell.Style {
	return theme.FadedStyle(s.Theme.TokenColor(tokenType), s.Theme.Colors.Background, opacity)
}

// LineNumberStyle returns the style for the line number gutter
func (s *Screen) LineNumberStyle(opacity float64) tcell.Style {
	return theme.FadedStyle(s.Theme.Colors.LineNumber, s.Theme.Colors.Background, opacity)
}

// GapStyle returns the style for the row that stands in for collapsed lines
func (s *Screen) GapStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Gap, s.Theme.Colors.Background)
}

// TitleStyle returns the style for step titles
func (s *Screen) TitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Title, s.Theme.Colors.Background).Bold(true)
}

// SubtitleStyle returns the style for step subtitles
func (s *Screen) SubtitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Subtitle, s.Theme.Colors.Background).Italic(true)
}

// StatusStyle returns the style for the status line
func (s *Screen) StatusStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Status, s.Theme.Colors.Background)
}

// HelpStyle returns the style for the help overlay
func (s *Screen) HelpStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Text, s.Theme.Colors.Background)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Gap, s.Theme.Colors.Background)
}

// HelpTitleStyle returns the style for the help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return s.TitleStyle()
}
