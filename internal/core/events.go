package core

import (
	"github.com/termim/qsquaremap/internal/model"
	"github.com/termim/qsquaremap/internal/watcher"
)

// Event is a state change reported by a session.
type Event interface {
	isEvent()
}

// ScanStartedEvent is emitted when a scan begins.
type ScanStartedEvent struct {
	Path string
}

func (ScanStartedEvent) isEvent() {}

// ScanProgressEvent is emitted while the walker runs.
type ScanProgressEvent struct {
	FilesScanned int64
	DirsScanned  int64
	BytesFound   int64
}

func (ScanProgressEvent) isEvent() {}

// ScanPhaseChangedEvent is emitted when the scan moves between phases.
type ScanPhaseChangedEvent struct {
	Phase ScanPhase
}

func (ScanPhaseChangedEvent) isEvent() {}

// ScanCompletedEvent is emitted when the scan finishes. Root is nil on
// failure.
type ScanCompletedEvent struct {
	Root *model.FSNode
	Err  error
}

func (ScanCompletedEvent) isEvent() {}

// CachedTreeEvent is emitted when a previously saved scan was loaded while a
// fresh scan runs.
type CachedTreeEvent struct {
	Root *model.FSNode
}

func (CachedTreeEvent) isEvent() {}

// ChangeDetectedEvent is emitted when the filesystem watcher sees a change
// under the scanned root.
type ChangeDetectedEvent struct {
	Path string
	Type watcher.EventType
}

func (ChangeDetectedEvent) isEvent() {}

// ErrorEvent is emitted for failures that do not end the session.
type ErrorEvent struct {
	Err error
}

func (ErrorEvent) isEvent() {}
