// ABOUTME: Polling-based file watcher used to reload word lists while running
// ABOUTME: Compares file mtimes at a fixed interval; stops when its context ends

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling interval used when none is given.
const DefaultWatchInterval = 2 * time.Second

// Watcher reports changes to a set of files by polling their mtimes.
type Watcher struct {
	mu       sync.Mutex
	paths    []string
	interval time.Duration
	onChange func()
	mtimes   map[string]time.Time
}

// NewWatcher creates a watcher over paths. The current mtimes are recorded
// immediately, so only later changes are reported.
func NewWatcher(paths []string, interval time.Duration, onChange func()) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &Watcher{
		paths:    append([]string(nil), paths...),
		interval: interval,
		onChange: onChange,
		mtimes:   make(map[string]time.Time, len(paths)),
	}
	w.snapshotLocked()
	return w
}

// Run polls until ctx is done, calling onChange after each detected change.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.Poll() && w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// Poll checks the files once and reports whether any of them was modified,
// created or removed since the previous check.
func (w *Watcher) Poll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.changedLocked() {
		return false
	}
	w.snapshotLocked()
	return true
}

func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		if err != nil {
			if existed {
				return true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
