package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// deckChangedEvent tells the event loop that the deck file changed on disk
type deckChangedEvent struct {
	tcell.EventTime
	path string
}

func newDeckChangedEvent(path string) *deckChangedEvent {
	ev := &deckChangedEvent{path: path}
	ev.SetEventNow()
	return ev
}

// DeckWatcher watches a deck file and reports changes once writes settle.
// The directory is watched rather than the file, so editors that save by
// renaming a temporary file are noticed too.
type DeckWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func(path string)
	logger   *zap.Logger
	debounce time.Duration
	pending  time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewDeckWatcher creates a watcher for the deck at path
func NewDeckWatcher(path string, onChange func(path string), logger *zap.Logger) (*DeckWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	return &DeckWatcher{
		watcher:  watcher,
		path:     abs,
		onChange: onChange,
		logger:   logger,
		debounce: 150 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
func (dw *DeckWatcher) Start(ctx context.Context) error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.running = true
	dw.mu.Unlock()

	if err := dw.watcher.Add(filepath.Dir(dw.path)); err != nil {
		dw.mu.Lock()
		dw.running = false
		dw.mu.Unlock()
		return err
	}
	dw.logger.Debug("Watching deck", zap.String("path", dw.path))

	go dw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for it to finish
func (dw *DeckWatcher) Stop() {
	dw.mu.Lock()
	if !dw.running {
		dw.mu.Unlock()
		_ = dw.watcher.Close()
		return
	}
	dw.running = false
	dw.mu.Unlock()

	close(dw.stopCh)
	<-dw.doneCh

	if err := dw.watcher.Close(); err != nil {
		dw.logger.Warn("Closing deck watcher failed", zap.Error(err))
	}
}

func (dw *DeckWatcher) run(ctx context.Context) {
	defer close(dw.doneCh)

	ticker := time.NewTicker(dw.debounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-dw.stopCh:
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != dw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				dw.pending = time.Now()
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("Deck watcher error", zap.Error(err))

		case <-ticker.C:
			if !dw.pending.IsZero() && time.Since(dw.pending) >= dw.debounce {
				dw.pending = time.Time{}
				dw.logger.Debug("Deck changed", zap.String("path", dw.path))
				dw.onChange(dw.path)
			}
		}
	}
}

// Watch reloads the player's deck whenever its file changes. The returned
// function stops watching.
func (a *App) Watch(ctx context.Context) (func(), error) {
	if a.store == nil {
		return func() {}, nil
	}
	dw, err := NewDeckWatcher(a.store.FilePath, func(path string) {
		if err := a.screen.PostEvent(newDeckChangedEvent(path)); err != nil {
			a.logger.Warn("Dropped reload event", zap.Error(err))
		}
	}, a.logger)
	if err != nil {
		return nil, err
	}
	if err := dw.Start(ctx); err != nil {
		dw.Stop()
		return nil, err
	}
	return dw.Stop, nil
}
