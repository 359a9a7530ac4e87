package input

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event and frame counters for one tracker (or a shared
// collector across trackers). All methods are safe for concurrent use and
// never take the tracker lock.
type Metrics struct {
	keyEventsTotal   atomic.Uint64
	mouseEventsTotal atomic.Uint64
	textEventsTotal  atomic.Uint64
	ignoredEvents    atomic.Uint64
	blockedEvents    atomic.Uint64
	framesTotal      atomic.Uint64

	// lastFrameNano is the wall-clock time of the most recent frame
	// boundary, in Unix nanoseconds. Zero until the first frame.
	lastFrameNano atomic.Int64

	startTime time.Time
	enabled   atomic.Bool
}

// NewMetrics creates an enabled metrics collector.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled reports whether collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordKeyEvent counts a key event.
func (m *Metrics) RecordKeyEvent() {
	if !m.enabled.Load() {
		return
	}
	m.keyEventsTotal.Add(1)
}

// RecordMouseEvent counts a mouse event (button, move, or wheel).
func (m *Metrics) RecordMouseEvent() {
	if !m.enabled.Load() {
		return
	}
	m.mouseEventsTotal.Add(1)
}

// RecordTextEvent counts a text character event.
func (m *Metrics) RecordTextEvent() {
	if !m.enabled.Load() {
		return
	}
	m.textEventsTotal.Add(1)
}

// RecordIgnored counts an event dropped for an out-of-range code or
// button.
func (m *Metrics) RecordIgnored() {
	if !m.enabled.Load() {
		return
	}
	m.ignoredEvents.Add(1)
}

// RecordBlocked counts an event the delivery layer swallowed because a
// blocking latch was active.
func (m *Metrics) RecordBlocked() {
	if !m.enabled.Load() {
		return
	}
	m.blockedEvents.Add(1)
}

// RecordFrame counts a frame boundary and stamps frame liveness.
func (m *Metrics) RecordFrame() {
	if !m.enabled.Load() {
		return
	}
	m.framesTotal.Add(1)
	m.lastFrameNano.Store(time.Now().UnixNano())
}

// KeyEventsTotal returns the total key events counted.
func (m *Metrics) KeyEventsTotal() uint64 {
	return m.keyEventsTotal.Load()
}

// MouseEventsTotal returns the total mouse events counted.
func (m *Metrics) MouseEventsTotal() uint64 {
	return m.mouseEventsTotal.Load()
}

// FramesTotal returns the total frame boundaries counted.
func (m *Metrics) FramesTotal() uint64 {
	return m.framesTotal.Load()
}

// BlockedEvents returns the total events swallowed by blocking latches.
func (m *Metrics) BlockedEvents() uint64 {
	return m.blockedEvents.Load()
}

// MetricsSnapshot holds a point-in-time view of all counters.
type MetricsSnapshot struct {
	KeyEventsTotal   uint64
	MouseEventsTotal uint64
	TextEventsTotal  uint64
	IgnoredEvents    uint64
	BlockedEvents    uint64
	FramesTotal      uint64

	EventsPerSecond float64
	FramesPerSecond float64

	LastFrame time.Time
	Uptime    time.Duration
}

// Snapshot returns a point-in-time view of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	uptime := time.Since(m.startTime)

	snap := MetricsSnapshot{
		KeyEventsTotal:   m.keyEventsTotal.Load(),
		MouseEventsTotal: m.mouseEventsTotal.Load(),
		TextEventsTotal:  m.textEventsTotal.Load(),
		IgnoredEvents:    m.ignoredEvents.Load(),
		BlockedEvents:    m.blockedEvents.Load(),
		FramesTotal:      m.framesTotal.Load(),
		Uptime:           uptime,
	}

	if nano := m.lastFrameNano.Load(); nano != 0 {
		snap.LastFrame = time.Unix(0, nano)
	}

	if uptime > 0 {
		events := snap.KeyEventsTotal + snap.MouseEventsTotal + snap.TextEventsTotal
		snap.EventsPerSecond = float64(events) / uptime.Seconds()
		snap.FramesPerSecond = float64(snap.FramesTotal) / uptime.Seconds()
	}

	return snap
}

// Reset clears all counters and restarts the uptime clock.
func (m *Metrics) Reset() {
	m.keyEventsTotal.Store(0)
	m.mouseEventsTotal.Store(0)
	m.textEventsTotal.Store(0)
	m.ignoredEvents.Store(0)
	m.blockedEvents.Store(0)
	m.framesTotal.Store(0)
	m.lastFrameNano.Store(0)
	m.startTime = time.Now()
}

// HealthStatus reports frame-loop liveness. A stalled frame loop is not an
// error (edges simply stop resolving until the next boundary) but it is
// the condition an operator wants surfaced.
type HealthStatus struct {
	Healthy        bool
	FramesTotal    uint64
	SinceLastFrame time.Duration
	StallThreshold time.Duration
	Message        string
}

// HealthCheck reports whether a frame boundary was seen within the stall
// threshold.
func (m *Metrics) HealthCheck(stallThreshold time.Duration) HealthStatus {
	status := HealthStatus{
		Healthy:        true,
		FramesTotal:    m.framesTotal.Load(),
		StallThreshold: stallThreshold,
	}

	nano := m.lastFrameNano.Load()
	if nano == 0 {
		status.SinceLastFrame = time.Since(m.startTime)
	} else {
		status.SinceLastFrame = time.Since(time.Unix(0, nano))
	}

	switch {
	case status.FramesTotal == 0 && status.SinceLastFrame <= stallThreshold:
		status.Message = "no frames yet"
	case status.SinceLastFrame > stallThreshold:
		status.Healthy = false
		status.Message = "frame loop stalled"
	default:
		status.Message = "healthy"
	}

	return status
}
