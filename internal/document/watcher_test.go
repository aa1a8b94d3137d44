package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdedit/mdedit/internal/logging"
)

func TestWatchFileDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.md")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w, err := WatchFile(path, 20*time.Millisecond, logging.Discard(), func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	// Give the watcher goroutine a moment to start.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("updated"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if filepath.Base(got) != "watched.md" {
			t.Errorf("handler got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.md")
	sibling := filepath.Join(dir, "other.md")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w, err := WatchFile(path, 20*time.Millisecond, logging.Discard(), func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(sibling, []byte("noise"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		t.Errorf("handler fired for sibling write: %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.md")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path, 10*time.Millisecond, nil, func(string) {})
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "no", "such", "file.md"), 10*time.Millisecond, nil, func(string) {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
