package input

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordKeyEvent()
	m.RecordKeyEvent()
	m.RecordMouseEvent()
	m.RecordTextEvent()
	m.RecordIgnored()
	m.RecordBlocked()
	m.RecordFrame()

	snap := m.Snapshot()
	if snap.KeyEventsTotal != 2 {
		t.Errorf("KeyEventsTotal = %d, want 2", snap.KeyEventsTotal)
	}
	if snap.MouseEventsTotal != 1 {
		t.Errorf("MouseEventsTotal = %d, want 1", snap.MouseEventsTotal)
	}
	if snap.TextEventsTotal != 1 {
		t.Errorf("TextEventsTotal = %d, want 1", snap.TextEventsTotal)
	}
	if snap.IgnoredEvents != 1 {
		t.Errorf("IgnoredEvents = %d, want 1", snap.IgnoredEvents)
	}
	if snap.BlockedEvents != 1 {
		t.Errorf("BlockedEvents = %d, want 1", snap.BlockedEvents)
	}
	if snap.FramesTotal != 1 {
		t.Errorf("FramesTotal = %d, want 1", snap.FramesTotal)
	}
	if snap.LastFrame.IsZero() {
		t.Error("LastFrame not stamped by RecordFrame")
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics()
	m.SetEnabled(false)

	m.RecordKeyEvent()
	m.RecordFrame()

	if m.KeyEventsTotal() != 0 || m.FramesTotal() != 0 {
		t.Error("disabled metrics still counted events")
	}
	if m.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()

	m.RecordKeyEvent()
	m.RecordFrame()
	m.Reset()

	snap := m.Snapshot()
	if snap.KeyEventsTotal != 0 || snap.FramesTotal != 0 {
		t.Error("Reset did not clear counters")
	}
	if !snap.LastFrame.IsZero() {
		t.Error("Reset did not clear frame liveness")
	}
}

func TestHealthCheck(t *testing.T) {
	m := NewMetrics()

	// Before any frame arrives the loop is given the benefit of the doubt
	// up to the threshold.
	status := m.HealthCheck(time.Minute)
	if !status.Healthy {
		t.Errorf("HealthCheck() unhealthy before first frame within threshold: %+v", status)
	}

	m.RecordFrame()
	status = m.HealthCheck(time.Minute)
	if !status.Healthy || status.Message != "healthy" {
		t.Errorf("HealthCheck() = %+v, want healthy", status)
	}

	// A threshold in the past marks the loop stalled.
	status = m.HealthCheck(-time.Second)
	if status.Healthy {
		t.Errorf("HealthCheck() = %+v, want stalled", status)
	}
	if status.Message != "frame loop stalled" {
		t.Errorf("HealthCheck() message = %q", status.Message)
	}
}

func TestTrackerRecordsMetrics(t *testing.T) {
	tr := New()

	tr.KeyDown(keyA)
	tr.KeyUp(keyA)
	tr.MouseMove(1, 1)
	tr.Wheel(1)
	tr.ButtonDown(ButtonLeft)
	tr.TextChar('q')
	tr.NextFrame()

	snap := tr.Metrics().Snapshot()
	if snap.KeyEventsTotal != 2 {
		t.Errorf("KeyEventsTotal = %d, want 2", snap.KeyEventsTotal)
	}
	if snap.MouseEventsTotal != 3 {
		t.Errorf("MouseEventsTotal = %d, want 3", snap.MouseEventsTotal)
	}
	if snap.TextEventsTotal != 1 {
		t.Errorf("TextEventsTotal = %d, want 1", snap.TextEventsTotal)
	}
	if snap.FramesTotal != 1 {
		t.Errorf("FramesTotal = %d, want 1", snap.FramesTotal)
	}
}

func TestSharedMetricsOption(t *testing.T) {
	shared := NewMetrics()
	a := New(WithMetrics(shared))
	b := New(WithMetrics(shared))

	a.KeyDown(keyA)
	b.KeyDown(keyA)

	if got := shared.KeyEventsTotal(); got != 2 {
		t.Errorf("shared KeyEventsTotal = %d, want 2", got)
	}
}
