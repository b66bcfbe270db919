package app

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-codesurfer/internal/config"
	"github.com/pstuifzand/tui-codesurfer/internal/dimensions"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"github.com/pstuifzand/tui-codesurfer/internal/socket"
	"github.com/pstuifzand/tui-codesurfer/internal/storage"
	"github.com/pstuifzand/tui-codesurfer/internal/surfer"
	"github.com/pstuifzand/tui-codesurfer/internal/ui"
	"go.uber.org/zap"
)

// Options configure the player
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	StartStep int
	// Store is reloaded when the deck file changes, nil disables reloading
	Store *storage.DeckStore
}

// App is the deck player: it owns the screen, advances the animation and
// handles input
type App struct {
	screen      *ui.Screen
	deck        *model.Deck
	store       *storage.DeckStore
	cfg         *config.Config
	logger      *zap.Logger
	surfer      *surfer.Surfer
	dims        *dimensions.Cache
	view        *ui.CodeView
	help        *ui.HelpScreen
	keybindings []KeyBinding
	remote      <-chan socket.Message

	step      int     // step the player is heading to
	progress  float64 // progress currently on screen
	from      float64
	animStart time.Time
	animating bool
	now       func() time.Time

	statusMsg string
	quit      bool
}

// NewApp creates a player for a deck on the given screen
func NewApp(screen *ui.Screen, deck *model.Deck, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		screen: screen,
		deck:   deck,
		store:  opts.Store,
		cfg:    cfg,
		logger: logger,
		help:   ui.NewHelpScreen(),
		now:    time.Now,
	}
	a.dims = dimensions.NewCache(a.measure)
	a.keybindings = a.InitializeKeybindings()

	infos := make([]ui.KeyBindingInfo, len(a.keybindings))
	for i := range a.keybindings {
		infos[i] = &a.keybindings[i]
	}
	a.help.SetKeybindings(infos)

	a.rebuild()
	a.step = int(a.surfer.Clamp(float64(opts.StartStep)))
	a.progress = float64(a.step)
	a.SetStatus("Press ? for help")
	return a
}

// rebuild recreates the surfer after the deck or options changed
func (a *App) rebuild() {
	a.surfer = surfer.New(a.deck, surfer.Options{
		Lines:       &lines.Options{UnfocusedOpacity: a.cfg.Opacity()},
		ShowNumbers: a.cfg.Numbers(),
		Dimensions:  a.dims,
		Logger:      a.logger,
	})
	a.view = ui.NewCodeView(a.surfer.GutterWidth())
	a.view.Footer = 1
	a.dims.Invalidate()
}

// measure measures the deck for the current screen size
func (a *App) measure() dimensions.Dimensions {
	width, height := a.screen.Size()
	m := dimensions.NewMeasurer(width, height)
	m.Gutter = a.view.Gutter
	if m.Gutter > 0 {
		m.Gutter++
	}
	d, _ := m.Measure(a.deck)
	return d
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once Close has finalized the screen
	go func() {
		for {
			event := a.screen.PollEvent()
			select {
			case eventChan <- event:
			case <-done:
				return
			}
			if event == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	a.render()
	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			a.handleEvent(ev)
			a.render()
		case msg := <-a.remote:
			a.handleRemote(msg)
			a.render()
		case <-ticker.C:
			if a.animating {
				a.tick()
				a.render()
			}
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
}

// Progress returns the progress currently on screen
func (a *App) Progress() float64 {
	return a.progress
}

// Step returns the step the player is on or heading to
func (a *App) Step() int {
	return a.step
}

// GoTo animates from the current progress to step
func (a *App) GoTo(step int) {
	step = int(a.surfer.Clamp(float64(step)))
	if step == a.step && !a.animating {
		return
	}
	a.step = step
	a.from = a.progress
	a.animStart = a.now()
	a.animating = true
	a.logger.Debug("Animating", zap.Float64("from", a.from), zap.Int("to", step))
}

// JumpTo shows step immediately, without animating
func (a *App) JumpTo(step int) {
	a.step = int(a.surfer.Clamp(float64(step)))
	a.progress = float64(a.step)
	a.animating = false
}

// tick advances the running animation to the current time
func (a *App) tick() {
	if !a.animating {
		return
	}
	target := float64(a.step)
	distance := math.Abs(target - a.from)
	duration := a.cfg.Duration().Seconds() * math.Max(1, distance)
	frac := a.now().Sub(a.animStart).Seconds() / duration
	if frac >= 1 || distance == 0 {
		a.progress = target
		a.animating = false
		return
	}
	a.progress = a.from + (target-a.from)*frac
}

// Reload reads the deck from its store again, keeping the current step
func (a *App) Reload() {
	if a.store == nil {
		return
	}
	deck, err := a.store.Load()
	if err != nil {
		a.logger.Warn("Reload failed", zap.String("path", a.store.FilePath), zap.Error(err))
		a.SetStatus("Reload failed: " + err.Error())
		return
	}
	a.deck = deck
	a.rebuild()
	a.JumpTo(a.step)
	a.logger.Info("Deck reloaded", zap.String("path", a.store.FilePath), zap.Int("steps", len(deck.Steps)))
	a.SetStatus("Reloaded")
}

// handleEvent dispatches a single event
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.dims.Invalidate()
	case *deckChangedEvent:
		a.Reload()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.help.IsVisible() {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == '?' || ev.Rune() == 'q' {
			a.help.Hide()
		}
		return
	}

	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
		a.quit = true
		return
	}

	for i := range a.keybindings {
		kb := &a.keybindings[i]
		if kb.matches(ev) {
			kb.Handler(a)
			return
		}
	}
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	frame := a.surfer.Frame(a.progress)
	a.view.Render(a.screen, frame)
	a.help.Render(a.screen)
	a.renderStatus()

	a.screen.Show()
}

func (a *App) renderStatus() {
	if a.help.IsVisible() {
		return
	}
	width, height := a.screen.Size()
	status := fmt.Sprintf("%d/%d", a.step+1, a.surfer.StepCount())
	x := width - ui.StringWidth(status) - 1
	a.screen.DrawString(x, height-1, status, a.screen.StatusStyle())
	if a.statusMsg != "" {
		a.screen.DrawStringEllipsis(1, height-1, a.statusMsg, x-2, a.screen.StatusStyle())
	}
}
