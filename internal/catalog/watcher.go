package catalog

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce batches bursts of file events (editors write several times)
// into a single reload.
const reloadDebounce = 500 * time.Millisecond

// Watcher reloads the store when collection files in the data directory
// change, so edits are picked up without a restart. A failed reload keeps the
// previous snapshot because LoadAll degrades per-collection instead of
// failing.
type Watcher struct {
	store   *Store
	logger  *slog.Logger
	fsw     *fsnotify.Watcher
	done    chan struct{}
	stopped sync.Once
}

// NewWatcher creates a watcher over the store's data directory.
func NewWatcher(store *Store, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		store:  store,
		logger: logger,
		fsw:    fsw,
		done:   make(chan struct{}),
	}, nil
}

// Start begins watching and returns immediately; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(w.store.DataDir()); err != nil {
		return err
	}

	go w.loop()

	w.logger.Info("watching data directory", "dir", w.store.DataDir())
	return nil
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopped.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	// The timer is created stopped; any relevant event re-arms it.
	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isCollectionEvent(event) {
				continue
			}
			w.logger.Debug("data file changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(reloadDebounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("data watcher error", "error", err)

		case <-timer.C:
			w.store.LoadAll()
		}
	}
}

// isCollectionEvent reports whether the event touches a JSON file with an
// operation that can change collection content.
func isCollectionEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
