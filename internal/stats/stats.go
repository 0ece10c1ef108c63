// Package stats persists per-directory scan history so the UI can show when
// a tree was last scanned and pick a default root on startup.
package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Record describes one completed scan.
type Record struct {
	Path  string    `toml:"path"`
	When  time.Time `toml:"when"`
	Files int64     `toml:"files"`
	Bytes int64     `toml:"bytes"`
}

type historyFile struct {
	Scans []Record `toml:"scans"`
}

// History handles loading and saving scan records. Saves are debounced so a
// burst of rescans does not hammer the disk.
type History struct {
	path         string
	mu           sync.RWMutex
	records      map[string]Record
	dirty        bool
	saveTimer    *time.Timer
	saveDuration time.Duration
}

// NewHistory creates a history manager backed by the default file.
func NewHistory() *History {
	return NewHistoryAt(defaultPath())
}

// NewHistoryAt creates a history manager backed by the given file.
func NewHistoryAt(path string) *History {
	return &History{
		path:         path,
		records:      make(map[string]Record),
		saveDuration: 2 * time.Second,
	}
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qsquaremap-history.toml"
	}
	return filepath.Join(home, ".qsquaremap", "history.toml")
}

// Load reads the history file. A missing file is not an error.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file historyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return err
	}
	for _, rec := range file.Scans {
		h.records[rec.Path] = rec
	}
	return nil
}

// Lookup returns the last scan record for a root path.
func (h *History) Lookup(path string) (Record, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rec, ok := h.records[path]
	return rec, ok
}

// LastRoot returns the most recently scanned root, empty when none.
func (h *History) LastRoot() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var best Record
	for _, rec := range h.records {
		if rec.When.After(best.When) {
			best = rec
		}
	}
	return best.Path
}

// Add records a completed scan and schedules a debounced save.
func (h *History) Add(rec Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records[rec.Path] = rec
	h.dirty = true

	if h.saveTimer != nil {
		h.saveTimer.Stop()
	}
	h.saveTimer = time.AfterFunc(h.saveDuration, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.dirty {
			_ = h.saveLocked()
		}
	})
}

// Save writes the history to disk immediately.
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.saveLocked()
}

func (h *History) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}

	file := historyFile{Scans: make([]Record, 0, len(h.records))}
	for _, rec := range h.records {
		file.Scans = append(file.Scans, rec)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return err
	}

	h.dirty = false
	return os.WriteFile(h.path, buf.Bytes(), 0644)
}

// Close flushes any pending save.
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.saveTimer != nil {
		h.saveTimer.Stop()
		h.saveTimer = nil
	}
	if h.dirty {
		return h.saveLocked()
	}
	return nil
}
