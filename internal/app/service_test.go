package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/inputtrack/internal/config"
	"github.com/dshills/inputtrack/internal/event"
	"github.com/dshills/inputtrack/internal/input/key"
	"github.com/dshills/inputtrack/internal/registry"
)

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	if opts.LogOutput == nil {
		opts.LogOutput = io.Discard
	}
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown() })
	return s
}

func TestNewServiceDefaults(t *testing.T) {
	s := newTestService(t, Options{})

	if s.Config() != config.Default() {
		t.Errorf("Config() = %+v, want defaults", s.Config())
	}
	if s.Registry() == nil || s.Dispatcher() == nil {
		t.Fatal("registry or dispatcher not wired")
	}
}

func TestNewServiceLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte("grace_period = \"200ms\"\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestService(t, Options{ConfigPath: path})

	if got := s.Config().GracePeriod; got != 200*time.Millisecond {
		t.Errorf("GracePeriod = %s, want 200ms", got)
	}
}

func TestRegisterWindowAppliesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte("grace_period = \"300ms\"\nmetrics_enabled = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestService(t, Options{ConfigPath: path})
	tracker := s.RegisterWindow(registry.WindowID(1))

	if got := tracker.GracePeriod(); got != 300*time.Millisecond {
		t.Errorf("tracker GracePeriod = %s, want 300ms", got)
	}
	if tracker.Metrics().IsEnabled() {
		t.Error("metrics enabled despite metrics_enabled = false")
	}
}

func TestRegisterWindowIdempotent(t *testing.T) {
	s := newTestService(t, Options{})

	a := s.RegisterWindow(registry.WindowID(7))
	b := s.RegisterWindow(registry.WindowID(7))
	if a != b {
		t.Error("RegisterWindow returned a different tracker for the same window")
	}
}

func TestUnregisterWindow(t *testing.T) {
	s := newTestService(t, Options{})
	window := registry.WindowID(9)

	s.RegisterWindow(window)
	if !s.UnregisterWindow(window) {
		t.Error("UnregisterWindow = false for registered window")
	}
	if s.UnregisterWindow(window) {
		t.Error("UnregisterWindow = true for already-removed window")
	}
}

func TestApplyConfigPushesToTrackers(t *testing.T) {
	s := newTestService(t, Options{})
	tracker := s.RegisterWindow(registry.WindowID(3))

	cfg := config.Default()
	cfg.GracePeriod = 500 * time.Millisecond
	cfg.MetricsEnabled = false
	s.applyConfig(cfg)

	if got := tracker.GracePeriod(); got != 500*time.Millisecond {
		t.Errorf("tracker GracePeriod = %s, want 500ms", got)
	}
	if tracker.Metrics().IsEnabled() {
		t.Error("tracker metrics still enabled after reload")
	}
	if s.Config().GracePeriod != 500*time.Millisecond {
		t.Error("service config not updated")
	}
}

func TestConfigWatchLiveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputtrack.toml")
	if err := os.WriteFile(path, []byte("grace_period = \"100ms\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestService(t, Options{ConfigPath: path, WatchConfig: true})
	tracker := s.RegisterWindow(registry.WindowID(4))

	if err := os.WriteFile(path, []byte("grace_period = \"400ms\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if tracker.GracePeriod() == 400*time.Millisecond {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("tracker GracePeriod = %s, want 400ms after reload", tracker.GracePeriod())
}

func TestServiceEndToEndDispatch(t *testing.T) {
	s := newTestService(t, Options{})
	window := registry.WindowID(0xCAFE)
	tracker := s.RegisterWindow(window)

	if swallowed := s.Dispatcher().Dispatch(window, event.KeyDown(key.CodeA)); swallowed {
		t.Error("unblocked key event swallowed")
	}
	if !tracker.IsKeyDown(key.CodeA) {
		t.Error("dispatched key not visible on tracker")
	}

	tracker.BlockKeyboard(true)
	if swallowed := s.Dispatcher().Dispatch(window, event.KeyDown(key.CodeZ)); !swallowed {
		t.Error("blocked key event forwarded")
	}
}
