package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSessionScan(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep history writes out of the real home

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), 200)

	s := NewSession(dir, 2, false)
	defer s.Stop()

	var started, completed bool
	for ev := range s.StartScan(context.Background()) {
		switch ev := ev.(type) {
		case ScanStartedEvent:
			if ev.Path != dir {
				t.Errorf("started path = %q, want %q", ev.Path, dir)
			}
			started = true
		case ScanCompletedEvent:
			if ev.Err != nil {
				t.Fatalf("scan failed: %v", ev.Err)
			}
			if ev.Root == nil {
				t.Fatal("completed without a root")
			}
			completed = true
		}
	}

	if !started || !completed {
		t.Fatalf("started=%v completed=%v", started, completed)
	}

	root := s.Root()
	if root == nil {
		t.Fatal("Root() is nil after scan")
	}
	if got := root.TotalSize(); got < 300 {
		t.Errorf("total size = %d, want at least 300", got)
	}
	if s.ScanState().Phase != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.ScanState().Phase)
	}

	// The scan is recorded in history.
	rec, ok := s.LastScan()
	if !ok {
		t.Fatal("no history record after scan")
	}
	if rec.Path != dir {
		t.Errorf("history path = %q", rec.Path)
	}
}

func TestSessionScanMissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s := NewSession(filepath.Join(t.TempDir(), "does-not-exist"), 2, false)
	defer s.Stop()

	var scanErr error
	for ev := range s.StartScan(context.Background()) {
		if done, ok := ev.(ScanCompletedEvent); ok {
			scanErr = done.Err
		}
	}
	if scanErr == nil {
		t.Fatal("scanning a missing directory should fail")
	}
}

func TestScanStatePhases(t *testing.T) {
	if (ScanState{Phase: PhaseScanning}).InProgress() != true {
		t.Error("scanning should be in progress")
	}
	if (ScanState{Phase: PhaseComplete}).InProgress() {
		t.Error("complete is not in progress")
	}
	if PhaseScanning.String() == "" || PhaseSaving.String() == "" {
		t.Error("active phases need display names")
	}
	if PhaseIdle.String() != "" {
		t.Error("idle phase has no display name")
	}

	s := ScanState{StartTime: time.Now().Add(-3 * time.Second)}
	if s.Elapsed() < 2*time.Second {
		t.Errorf("elapsed = %v", s.Elapsed())
	}
	if (ScanState{}).Elapsed() != 0 {
		t.Error("zero start time should report zero elapsed")
	}
}
