package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte(`frame_rate = 30`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config) {
		reloads <- cfg
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`frame_rate = 75`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloads:
		if cfg.FrameRate != 75 {
			t.Errorf("reloaded FrameRate = %d, want 75", cfg.FrameRate)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed after write")
	}
}

func TestWatcherReportsBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte(`frame_rate = 30`), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(Config) {
		t.Error("reload handler called for an invalid config")
	}, WithDebounce(10*time.Millisecond), WithErrorHandler(func(err error) {
		errs <- err
	}))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`frame_rate = [nope`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported for malformed config")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputtrack.toml")
	if err := os.WriteFile(path, []byte(`frame_rate = 30`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config) {
		reloads <- cfg
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`frame_rate = 99`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("reload triggered by an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte(``), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
