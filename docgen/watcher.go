package docgen

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meridianbio/labdoc/errors"
	"github.com/meridianbio/labdoc/logger"
)

// RegenerateFunc performs one full regeneration. It must rebuild everything
// a watched file feeds into the output — in particular, re-apply the
// resource manifest over a fresh registry, so manifest edits actually reach
// the rendered reference rather than re-rendering stale data.
type RegenerateFunc func() error

// Watcher triggers regeneration whenever a watched path (the template
// directory, the resource manifest) changes. Rapid editor save bursts are
// debounced into a single regeneration.
type Watcher struct {
	regenerate     RegenerateFunc
	watcher        *fsnotify.Watcher
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher watches the given paths and calls regenerate on changes.
// Empty paths are skipped.
func NewWatcher(regenerate RegenerateFunc, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
	}

	return &Watcher{
		regenerate:     regenerate,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching.
func (w *Watcher) Stop() error {
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

			// Only regenerate on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleRegenerate()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Watcher error",
				"error", err)
		}
	}
}

// scheduleRegenerate debounces rapid changes and triggers regeneration.
func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.regenerate(); err != nil {
			logger.Errorw("Regeneration failed",
				"error", err)
		}
	})
}
