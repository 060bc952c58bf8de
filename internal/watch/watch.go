// Package watch signals when a single file changes, using fsnotify with a
// stat-polling fallback. `graphs theme -watch` uses it to re-resolve a theme
// file on save.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the stat interval used in polling mode.
const DefaultPollInterval = 2 * time.Second

// Watcher reports changes to one file.
//
// The parent directory is watched rather than the file itself so that editors
// which save by writing a temp file and renaming it over the original are
// still seen.
type Watcher struct {
	path string
	// events is buffered to 1 so bursts of writes coalesce into one signal.
	events chan struct{}
	done   chan struct{}
	fsw    *fsnotify.Watcher
	once   sync.Once

	polling      atomic.Bool
	pollInterval time.Duration
}

// New starts watching path. The file need not exist yet, but its directory
// must for fsnotify mode; otherwise New falls back to polling.
func New(path string, pollInterval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	w := &Watcher{
		path:         abs,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: pollInterval,
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Info("fsnotify unavailable, polling", "error", err)
		w.startPolling()
		return w, nil
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		slog.Info("cannot watch directory, polling", "dir", filepath.Dir(abs), "error", err)
		fsw.Close()
		w.startPolling()
		return w, nil
	}
	w.fsw = fsw
	go w.watch()
	return w, nil
}

// Events delivers a signal after the file is written, created or replaced.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Polling reports whether the watcher fell back to stat polling.
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = fmt.Errorf("closing fsnotify watcher: %w", closeErr)
			}
		}
	})
	return err
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Info("fsnotify error, switching to polling", "error", err)
			w.startPolling()
			return
		}
	}
}

// startPolling records the baseline before returning, so a write that lands
// right after New or the fsnotify failure is still reported.
func (w *Watcher) startPolling() {
	w.polling.Store(true)
	last := w.modTime()
	go w.poll(last)
}

func (w *Watcher) poll(last time.Time) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			if mod := w.modTime(); !mod.Equal(last) {
				last = mod
				if !mod.IsZero() {
					w.notify()
				}
			}
		}
	}
}

func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
