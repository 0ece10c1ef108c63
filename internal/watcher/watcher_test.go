package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesCreate(t *testing.T) {
	tmp := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.AddRecursive(tmp); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(filepath.Join(tmp, "new.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Path != filepath.Join(tmp, "new.txt") {
			t.Errorf("event path = %q", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event within timeout")
	}
}

// stopUnderLoad starts a watcher, hammers the watched directory with writes
// and stops the watcher mid-burst. Sends must never hit a closed channel,
// and the channel must still close so range-based consumers terminate.
func stopUnderLoad(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.AddRecursive(tmp); err != nil {
		t.Fatal(err)
	}
	w.Start()

	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			os.WriteFile(filepath.Join(tmp, fmt.Sprintf("f%d", i)), []byte("x"), 0644)
		}
	}()

	time.Sleep(time.Millisecond)
	_ = w.Stop()
	close(stop)
	<-writerDone

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel did not close after Stop")
		}
	}
}

func TestStopDuringEventBurst(t *testing.T) {
	for i := 0; i < 50; i++ {
		stopUnderLoad(t)
	}
}

func TestPathDepth(t *testing.T) {
	if d := pathDepth("a"); d != 1 {
		t.Errorf("depth(a) = %d", d)
	}
	deep := filepath.Join("a", "b", "c")
	if d := pathDepth(deep); d != 3 {
		t.Errorf("depth(a/b/c) = %d", d)
	}
}
