// Package app implements the --watch mode: a small bubbletea program
// that keeps the listing on screen and refreshes it when the directory
// or the repository changes.
package app

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gersbach/lsg/internal/log"
)

// watchDebounce is the debounce window for watcher events. Bursts of
// filesystem activity (a git checkout, an editor save) collapse into
// one refresh.
const watchDebounce = 600 * time.Millisecond

// watchService wraps fsnotify for the listing: it watches the listed
// directory plus the repository metadata dirs and signals coalesced
// change events.
type watchService struct {
	events      chan struct{}
	done        chan struct{}
	watcher     *fsnotify.Watcher
	mu          sync.Mutex
	paths       map[string]struct{}
	lastRefresh time.Time
	started     bool
}

func newWatchService() *watchService {
	return &watchService{
		paths: make(map[string]struct{}),
	}
}

// Start watches dir and, when non-empty, the repository's .git
// directory (refs and HEAD moves change status without touching the
// listed files).
func (w *watchService) Start(dir, repoRoot string) error {
	if w.started {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher
	w.events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.started = true

	w.addDir(dir)
	if repoRoot != "" {
		gitDir := filepath.Join(repoRoot, ".git")
		w.addDir(gitDir)
		w.addDir(filepath.Join(gitDir, "refs"))
	}

	go w.run()
	return nil
}

// Stop closes the watcher and the event stream.
func (w *watchService) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// Events exposes the coalesced change stream.
func (w *watchService) Events() <-chan struct{} {
	return w.events
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *watchService) ShouldRefresh(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < watchDebounce {
		return false
	}
	w.lastRefresh = now
	return true
}

func (w *watchService) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *watchService) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

func (w *watchService) addDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		log.Printf("watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}
