// Package core orchestrates scanning, caching, history and watching for one
// examined directory, without any UI dependencies. Both the TUI and the
// headless render command drive it.
package core

import (
	"context"
	"sync"
	"time"

	"github.com/termim/qsquaremap/internal/cache"
	"github.com/termim/qsquaremap/internal/logging"
	"github.com/termim/qsquaremap/internal/model"
	"github.com/termim/qsquaremap/internal/scanner"
	"github.com/termim/qsquaremap/internal/stats"
	"github.com/termim/qsquaremap/internal/watcher"
)

// Session manages the lifecycle of one scanned directory tree.
type Session struct {
	mu sync.RWMutex

	path string
	root *model.FSNode
	scan ScanState

	scanner scanner.Scanner
	watcher *watcher.Watcher
	cache   *cache.Cache
	history *stats.History

	workers  int
	useCache bool
}

// NewSession creates a session for the given directory. workers sets the
// walker parallelism, useCache enables loading and saving persisted scans.
func NewSession(path string, workers int, useCache bool) *Session {
	history := stats.NewHistory()
	if err := history.Load(); err != nil {
		logging.Debug.Printf("load scan history: %v", err)
	}

	s := &Session{
		path:     path,
		history:  history,
		workers:  workers,
		useCache: useCache,
	}
	if useCache {
		s.cache = cache.New(cache.DefaultDir())
	}
	return s
}

// Path returns the directory this session examines.
func (s *Session) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Root returns the most recent scan result, nil before the first scan
// completes.
func (s *Session) Root() *model.FSNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// ScanState returns a snapshot of the current scan state.
func (s *Session) ScanState() ScanState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scan
}

// LastScan returns the recorded previous scan of this path, if any.
func (s *Session) LastScan() (stats.Record, bool) {
	return s.history.Lookup(s.Path())
}

// DiskUsage reports total and free bytes of the filesystem holding the
// scanned path.
func (s *Session) DiskUsage() (total, free int64, err error) {
	return scanner.DiskUsage(s.Path())
}

// StartScan begins scanning in the background and returns the event channel
// for this scan. The channel closes when the scan is done.
func (s *Session) StartScan(ctx context.Context) <-chan Event {
	s.mu.Lock()
	s.scanner = scanner.NewWalker(s.workers)
	s.scan = ScanState{Phase: PhaseScanning, StartTime: time.Now()}
	path := s.path
	s.mu.Unlock()

	events := make(chan Event, 64)
	go s.runScan(ctx, path, events)
	return events
}

func (s *Session) runScan(ctx context.Context, path string, events chan Event) {
	defer close(events)

	events <- ScanStartedEvent{Path: path}

	// A cached tree gives the UI something to show while the real scan
	// runs.
	if s.cache != nil {
		if root, err := s.cache.Load(path); err == nil {
			events <- CachedTreeEvent{Root: root}
		}
	}

	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		for p := range s.scanner.Progress() {
			s.mu.Lock()
			s.scan.FilesScanned = p.FilesScanned
			s.scan.DirsScanned = p.DirsScanned
			s.scan.BytesFound = p.BytesFound
			s.mu.Unlock()

			events <- ScanProgressEvent{
				FilesScanned: p.FilesScanned,
				DirsScanned:  p.DirsScanned,
				BytesFound:   p.BytesFound,
			}
		}
	}()

	root, err := s.scanner.Scan(ctx, path)
	// The progress channel closes when Scan returns; wait so no progress
	// event lands on a closed events channel.
	<-progressDone
	if err != nil {
		s.mu.Lock()
		s.scan.Phase = PhaseIdle
		s.mu.Unlock()

		events <- ScanCompletedEvent{Err: err}
		return
	}

	s.mu.Lock()
	s.scan.Phase = PhaseSaving
	s.root = root
	scan := s.scan
	s.mu.Unlock()

	events <- ScanPhaseChangedEvent{Phase: PhaseSaving}

	if s.cache != nil {
		if err := s.cache.Save(path, root); err != nil {
			logging.Debug.Printf("save scan cache: %v", err)
			events <- ErrorEvent{Err: err}
		}
	}
	s.history.Add(stats.Record{
		Path:  path,
		When:  time.Now(),
		Files: scan.FilesScanned,
		Bytes: root.TotalSize(),
	})

	s.mu.Lock()
	s.scan.Phase = PhaseComplete
	s.mu.Unlock()

	events <- ScanCompletedEvent{Root: root}
}

// StartWatching watches the scanned path for filesystem changes and reports
// them on the returned channel. Any previous watcher is replaced.
func (s *Session) StartWatching() (<-chan Event, error) {
	s.mu.Lock()
	if s.watcher != nil {
		_ = s.watcher.Stop()
	}

	w, err := watcher.New()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.watcher = w
	path := s.path
	s.mu.Unlock()

	if err := w.AddRecursive(path); err != nil {
		logging.Debug.Printf("watch %s: %v", path, err)
	}
	w.Start()

	events := make(chan Event, 64)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ChangeDetectedEvent{Path: ev.Path, Type: ev.Type}
		}
	}()
	return events, nil
}

// Stop releases the watcher and flushes the scan history.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		_ = s.watcher.Stop()
		s.watcher = nil
	}
	if err := s.history.Close(); err != nil {
		logging.Debug.Printf("flush scan history: %v", err)
	}
}
