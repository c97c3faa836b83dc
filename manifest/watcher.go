package manifest

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
)

// Watcher watches a manifest file for changes and triggers reload callbacks.
type Watcher struct {
	manifestPath   string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called with the reloaded manifest after each change.
type ReloadCallback func(*Manifest) error

// NewWatcher creates a watcher for the manifest at manifestPath.
func NewWatcher(manifestPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	if err := watcher.Add(manifestPath); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watching manifest %s", manifestPath)
	}

	w := &Watcher{
		manifestPath:   manifestPath,
		watcher:        watcher,
		callbacks:      make([]ReloadCallback, 0),
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}
	return w, nil
}

// OnReload registers a callback to be called when the manifest is reloaded.
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for manifest changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	return w.watcher.Close()
}

// watchLoop monitors file system events.
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events. Editors that replace
			// the file on save surface as Create.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if filepath.Base(event.Name) != filepath.Base(w.manifestPath) {
					continue
				}
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Errorw("Manifest watcher error",
				"manifest", w.manifestPath,
				"error", err)
		}
	}
}

// scheduleReload debounces rapid successive events into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.reload)
}

// reload loads the manifest and runs callbacks. A manifest that fails to
// load or validate is reported and skipped; the watch continues.
func (w *Watcher) reload() {
	m, err := Load(w.manifestPath)
	if err != nil {
		logger.Errorw("Manifest reload failed",
			"manifest", w.manifestPath,
			"error", err)
		return
	}

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(m); err != nil {
			logger.Errorw("Manifest reload callback failed",
				"manifest", w.manifestPath,
				"error", err)
		}
	}

	logger.Infow("Manifest reloaded",
		"manifest", w.manifestPath,
		"aggregates", len(m.Aggregates))
}
