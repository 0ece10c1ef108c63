package core

import "time"

// ScanPhase represents the current phase of a scan.
type ScanPhase int

const (
	PhaseIdle ScanPhase = iota
	PhaseScanning
	PhaseSaving
	PhaseComplete
)

// String returns a human-readable phase name.
func (p ScanPhase) String() string {
	switch p {
	case PhaseScanning:
		return "Scanning files"
	case PhaseSaving:
		return "Saving results"
	case PhaseComplete:
		return "Complete"
	default:
		return ""
	}
}

// ScanState holds the current scan state.
type ScanState struct {
	Phase        ScanPhase
	StartTime    time.Time
	FilesScanned int64
	DirsScanned  int64
	BytesFound   int64
}

// InProgress reports whether a scan is still running.
func (s ScanState) InProgress() bool {
	return s.Phase == PhaseScanning || s.Phase == PhaseSaving
}

// Elapsed returns time since the scan started.
func (s ScanState) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime).Truncate(time.Second)
}
