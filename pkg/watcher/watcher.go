package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadWatcher watches a single model file and invokes a callback when
// it changes. Changes are debounced so a burst of write events during a
// save produces one callback. Editors that save via rename-replace drop
// the inode from the watch list, so the watcher re-adds the path after
// remove/rename events.
type ReloadWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	debounce time.Duration
	timer    *time.Timer
	onChange func(string)
}

// New creates a watcher for path. The callback runs on the watcher's
// goroutine after the debounce interval elapses without further events.
func New(path string, debounce time.Duration, onChange func(string)) (*ReloadWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(absPath); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &ReloadWatcher{
		watcher:  fsw,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Start begins delivering change events
func (w *ReloadWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				switch {
				case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
					w.scheduleCallback()
				case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					w.rearm()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[watcher] error: %v", err)
			}
		}
	}()
}

// scheduleCallback resets the debounce timer for the watched file
func (w *ReloadWatcher) scheduleCallback() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(w.path)
	})
}

// rearm re-adds the watched path after a rename-replace save. The new
// file may not exist yet, so the add is retried briefly before giving
// up.
func (w *ReloadWatcher) rearm() {
	go func() {
		for i := 0; i < 20; i++ {
			if err := w.watcher.Add(w.path); err == nil {
				w.scheduleCallback()
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
		log.Printf("[watcher] lost track of %s after rename", w.path)
	}()
}

// Close stops the watcher
func (w *ReloadWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
