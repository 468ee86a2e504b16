package main

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher watches a file for changes with debouncing.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	timer   *time.Timer
}

func NewWatcher(logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		logger: logger,
		done:   make(chan struct{}),
	}
}

func (w *Watcher) Watch(path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Has(fsnotify.Write) {
					w.debounce(onChange)
				}

				// editors that save by rename/replace drop the watch
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					time.Sleep(debounceDelay)
					if err := watcher.Add(path); err != nil {
						w.logger.Warn("re-watch failed", "path", path, "error", err)
						continue
					}
					w.debounce(onChange)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watcher error", "error", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

func (w *Watcher) debounce(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, fn)
}

func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
