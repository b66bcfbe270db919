package app

import (
	"github.com/gdamore/tcell/v2"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Label       string // how the key is shown in help
	Keys        []tcell.Key
	Runes       []rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key label of this keybinding
func (kb *KeyBinding) GetKey() string {
	return kb.Label
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

func (kb *KeyBinding) matches(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		for _, r := range kb.Runes {
			if ev.Rune() == r {
				return true
			}
		}
		return false
	}
	for _, k := range kb.Keys {
		if ev.Key() == k {
			return true
		}
	}
	return false
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Label:       "→ l space",
			Keys:        []tcell.Key{tcell.KeyRight, tcell.KeyPgDn},
			Runes:       []rune{'l', ' ', 'n'},
			Description: "Next step",
			Handler: func(app *App) {
				app.GoTo(app.step + 1)
			},
		},
		{
			Label:       "← h",
			Keys:        []tcell.Key{tcell.KeyLeft, tcell.KeyPgUp},
			Runes:       []rune{'h', 'p'},
			Description: "Previous step",
			Handler: func(app *App) {
				app.GoTo(app.step - 1)
			},
		},
		{
			Label:       "g Home",
			Keys:        []tcell.Key{tcell.KeyHome},
			Runes:       []rune{'g'},
			Description: "First step",
			Handler: func(app *App) {
				app.JumpTo(0)
			},
		},
		{
			Label:       "G End",
			Keys:        []tcell.Key{tcell.KeyEnd},
			Runes:       []rune{'G'},
			Description: "Last step",
			Handler: func(app *App) {
				app.JumpTo(app.surfer.StepCount() - 1)
			},
		},
		{
			Label:       "#",
			Runes:       []rune{'#'},
			Description: "Toggle line numbers",
			Handler: func(app *App) {
				if app.cfg.Numbers() {
					app.cfg.Set("show_numbers", "false")
				} else {
					app.cfg.Set("show_numbers", "true")
				}
				app.rebuild()
			},
		},
		{
			Label:       "r",
			Runes:       []rune{'r'},
			Description: "Reload deck",
			Handler: func(app *App) {
				app.Reload()
			},
		},
		{
			Label:       "?",
			Runes:       []rune{'?'},
			Description: "Toggle help",
			Handler: func(app *App) {
				app.help.Toggle()
			},
		},
		{
			Label:       "q Esc",
			Runes:       []rune{'q'},
			Description: "Quit",
			Handler: func(app *App) {
				app.quit = true
			},
		},
	}
}
