package ui

import "fmt"

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKey() string
	GetDescription() string
}

// HelpScreen manages the help display
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{
		keybindings: []KeyBindingInfo{},
	}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// Hide hides the help screen
func (h *HelpScreen) Hide() {
	h.visible = false
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// GetKeybindings returns a formatted list of keybindings
func (h *HelpScreen) GetKeybindings() []string {
	keyWidth := 0
	for _, kb := range h.keybindings {
		keyWidth = max(keyWidth, StringWidth(kb.GetKey()))
	}

	result := make([]string, 0, len(h.keybindings))
	for _, kb := range h.keybindings {
		key := PadStringToWidth(kb.GetKey(), keyWidth)
		result = append(result, fmt.Sprintf("  %s  - %s", key, kb.GetDescription()))
	}
	return result
}

// Render renders the help screen as a box in the middle of the screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	contentStyle := screen.HelpStyle()
	borderStyle := screen.HelpBorderStyle()
	titleStyle := screen.HelpTitleStyle()

	title := " Keybindings (? to close) "
	lines := h.GetKeybindings()

	boxWidth := StringWidth(title) + 4
	for _, line := range lines {
		boxWidth = max(boxWidth, StringWidth(line)+4)
	}
	boxWidth = min(boxWidth, screen.GetWidth())
	boxHeight := len(lines) + 4

	startX := max(0, (screen.GetWidth()-boxWidth)/2)
	startY := max(0, (screen.GetHeight()-boxHeight)/2)
	right := startX + boxWidth - 1

	for y := startY; y < startY+boxHeight; y++ {
		for x := startX; x <= right; x++ {
			screen.SetCell(x, y, ' ', contentStyle)
		}
	}

	horizontal := func(y int, left, fill, end rune) {
		screen.SetCell(startX, y, left, borderStyle)
		for x := startX + 1; x < right; x++ {
			screen.SetCell(x, y, fill, borderStyle)
		}
		screen.SetCell(right, y, end, borderStyle)
	}

	horizontal(startY, '┌', '─', '┐')
	screen.SetCell(startX, startY+1, '│', borderStyle)
	screen.DrawStringLimited(startX+1, startY+1, title, boxWidth-2, titleStyle)
	screen.SetCell(right, startY+1, '│', borderStyle)
	horizontal(startY+2, '├', '─', '┤')

	y := startY + 3
	for _, line := range lines {
		screen.SetCell(startX, y, '│', borderStyle)
		screen.DrawStringLimited(startX+1, y, line, boxWidth-2, contentStyle)
		screen.SetCell(right, y, '│', borderStyle)
		y++
	}
	horizontal(y, '└', '─', '┘')
}
