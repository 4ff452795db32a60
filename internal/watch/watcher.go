// Package watch reloads a catalog file when it changes on disk.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"tagfacet/internal/logging"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounceInterval = 100 * time.Millisecond

// ReloadFunc is called once per burst of changes to the catalog file.
type ReloadFunc func() error

type Option func(*CatalogWatcher)

func WithDebounce(d time.Duration) Option {
	return func(w *CatalogWatcher) {
		if d > 0 {
			w.debounceInterval = d
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(w *CatalogWatcher) {
		if log != nil {
			w.log = log
		}
	}
}

// CatalogWatcher watches the directory holding the catalog rather than the
// file itself, so atomic saves (write temp, rename over) are still seen.
type CatalogWatcher struct {
	dir              string
	name             string
	reloadFn         ReloadFunc
	log              *slog.Logger
	debounceInterval time.Duration

	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	doneChan  chan struct{}
	started   atomic.Bool
	closeOnce sync.Once

	mu      sync.Mutex
	pending *time.Timer
}

func NewCatalogWatcher(path string, reloadFn ReloadFunc, opts ...Option) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &CatalogWatcher{
		dir:              filepath.Dir(abs),
		name:             filepath.Base(abs),
		reloadFn:         reloadFn,
		log:              logging.Discard(),
		debounceInterval: DefaultDebounceInterval,
		watcher:          fsWatcher,
		stopChan:         make(chan struct{}),
		doneChan:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("catalog", abs)
	return w, nil
}

func (w *CatalogWatcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info("watching catalog")

	w.started.Store(true)
	go w.processEvents()
	return nil
}

func (w *CatalogWatcher) Close() {
	w.closeOnce.Do(func() {
		close(w.stopChan)
		w.watcher.Close()

		w.mu.Lock()
		if w.pending != nil {
			w.pending.Stop()
			w.pending = nil
		}
		w.mu.Unlock()

		if w.started.Load() {
			<-w.doneChan
		}
	})
}

func (w *CatalogWatcher) processEvents() {
	defer close(w.doneChan)

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *CatalogWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.log.Debug("catalog change detected", "op", event.Op.String())
	w.scheduleReload()
}

func (w *CatalogWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return
	default:
	}

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounceInterval, w.doReload)
}

func (w *CatalogWatcher) doReload() {
	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()

	if err := w.reloadFn(); err != nil {
		w.log.Error("catalog reload failed", "error", err)
		return
	}
	w.log.Info("catalog reloaded")
}
