// Package watcher reports filesystem changes under a scanned root so the
// application can rescan and rebuild the model.
package watcher

import (
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of filesystem event.
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
)

// Event represents a filesystem change.
type Event struct {
	Type EventType
	Path string
}

// maxWatchDepth bounds how deep directories are registered; inotify watch
// descriptors are a finite resource and a change deep in the tree still
// triggers a full rescan anyway.
const maxWatchDepth = 3

// Watcher wraps fsnotify with recursive directory registration.
type Watcher struct {
	fsw     *fsnotify.Watcher
	eventCh chan Event
	done    chan struct{}
}

// New creates a filesystem watcher.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		eventCh: make(chan Event, 100),
		done:    make(chan struct{}),
	}, nil
}

// Events returns the channel delivering filesystem events.
func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

// AddRecursive registers root and its subdirectories up to a fixed depth.
// Unreadable directories are skipped silently.
func (w *Watcher) AddRecursive(root string) error {
	if err := w.fsw.Add(root); err != nil {
		return err
	}
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		if pathDepth(rel) > maxWatchDepth {
			return fs.SkipDir
		}
		w.fsw.Add(path) // best effort
		return nil
	})
	return nil
}

func pathDepth(rel string) int {
	depth := 1
	for _, r := range rel {
		if r == filepath.Separator {
			depth++
		}
	}
	return depth
}

// Start begins translating fsnotify events until Stop is called. The event
// channel is closed by the translation goroutine itself, so a send can
// never race the close.
func (w *Watcher) Start() {
	go func() {
		defer close(w.eventCh)
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if e, relevant := translate(ev); relevant {
					select {
					case w.eventCh <- e:
					default: // UI is behind, drop rather than stall
					}
				}
			case _, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func translate(ev fsnotify.Event) (Event, bool) {
	switch {
	case ev.Has(fsnotify.Create):
		return Event{Type: EventCreated, Path: ev.Name}, true
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return Event{Type: EventDeleted, Path: ev.Name}, true
	case ev.Has(fsnotify.Write):
		return Event{Type: EventModified, Path: ev.Name}, true
	}
	return Event{}, false
}

// Stop stops the watcher. The event channel closes once the translation
// goroutine has drained out.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsw.Close()
}
