package preview

import (
	"context"
	"os"
	"sync"
	"time"
)

// Change represents a detected file change.
type Change struct {
	Path    string
	Removed bool
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files to watch.
	Paths []string

	// Interval is the polling interval (default: 500ms).
	Interval time.Duration
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (s fileState) same(o fileState) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

// Watcher polls files for changes.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	states   map[string]fileState
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = 500 * time.Millisecond
	}
	return &Watcher{
		config: config,
		states: make(map[string]fileState),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// IsRunning reports whether Start is polling.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running && w.stopCh != nil {
		close(w.stopCh)
		w.stopCh = nil
	}
}

func (w *Watcher) scanInitial() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.config.Paths {
		w.states[p] = stat(p)
	}
}

// checkForChanges compares every path with its last known state.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	var changes []Change
	for _, p := range w.config.Paths {
		cur := stat(p)
		prev := w.states[p]
		if cur.same(prev) {
			continue
		}
		w.states[p] = cur
		changes = append(changes, Change{Path: p, Removed: prev.exists && !cur.exists})
	}
	w.mu.Unlock()

	if callback == nil {
		return
	}
	for _, c := range changes {
		callback(c)
	}
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}
