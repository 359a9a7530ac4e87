package event

import (
	"sort"
	"sync"

	"github.com/dshills/inputtrack/internal/input"
	"github.com/dshills/inputtrack/internal/registry"
)

// TapPriority defines the invocation order for taps. Lower values run
// first.
type TapPriority int

const (
	// TapPriorityHigh runs early in the tap chain.
	TapPriorityHigh TapPriority = -100
	// TapPriorityNormal is the default priority.
	TapPriorityNormal TapPriority = 0
	// TapPriorityLow runs late in the tap chain.
	TapPriorityLow TapPriority = 100
)

// Tap observes an event before it is applied to a tracker. Returning true
// consumes the event: it is neither applied nor forwarded to the
// application.
type Tap func(window registry.WindowID, ev Event) bool

// TapID uniquely identifies a registered tap.
type TapID uint64

// tapRegistration pairs a tap with its ordering metadata.
type tapRegistration struct {
	id       TapID
	priority TapPriority
	tap      Tap
}

// Dispatcher routes normalized events to per-window trackers and answers
// the swallow-or-forward question for the message pump.
type Dispatcher struct {
	mu     sync.RWMutex
	reg    *registry.Registry
	taps   []tapRegistration
	nextID TapID

	// cursor overrides for immobilized windows, keyed by window. Written
	// when the pump intercepts a client cursor warp.
	overrides map[registry.WindowID]input.Position
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{
		reg:       reg,
		overrides: make(map[registry.WindowID]input.Position),
	}
}

// RegisterTap adds a tap with default priority and returns its ID.
func (d *Dispatcher) RegisterTap(tap Tap) TapID {
	return d.RegisterTapWithPriority(tap, TapPriorityNormal)
}

// RegisterTapWithPriority adds a tap at the given priority.
func (d *Dispatcher) RegisterTapWithPriority(tap Tap, priority TapPriority) TapID {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.taps = append(d.taps, tapRegistration{id: d.nextID, priority: priority, tap: tap})
	sort.SliceStable(d.taps, func(i, j int) bool {
		return d.taps[i].priority < d.taps[j].priority
	})
	return d.nextID
}

// UnregisterTap removes a tap. It reports whether the tap was registered.
func (d *Dispatcher) UnregisterTap(id TapID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.taps {
		if d.taps[i].id == id {
			d.taps = append(d.taps[:i], d.taps[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch delivers an event for a window. It returns true when the pump
// should swallow the raw message instead of forwarding it to the
// underlying application: either a tap consumed the event, or the
// tracker's matching blocking latch is active. State is applied before
// the blocking check so the overlay still observes blocked input. Events
// for unregistered windows are passed through untouched.
func (d *Dispatcher) Dispatch(window registry.WindowID, ev Event) bool {
	tracker, ok := d.reg.Lookup(window)
	if !ok {
		return false
	}

	if d.runTaps(window, ev) {
		return true
	}

	d.apply(tracker, ev)

	blocked := (ev.Kind.IsKeyboard() && tracker.IsBlockingKeyboardInput()) ||
		(ev.Kind.IsMouse() && tracker.IsBlockingMouseInput())
	if blocked {
		tracker.Metrics().RecordBlocked()
	}
	return blocked
}

// runTaps invokes taps in priority order until one consumes the event.
func (d *Dispatcher) runTaps(window registry.WindowID, ev Event) bool {
	d.mu.RLock()
	taps := make([]tapRegistration, len(d.taps))
	copy(taps, d.taps)
	d.mu.RUnlock()

	for _, reg := range taps {
		if reg.tap(window, ev) {
			return true
		}
	}
	return false
}

// apply mutates the tracker for the event kind.
func (d *Dispatcher) apply(t *input.Tracker, ev Event) {
	switch ev.Kind {
	case KindKeyDown:
		t.KeyDown(ev.Code)
	case KindKeyUp:
		t.KeyUp(ev.Code)
	case KindButtonDown:
		t.ButtonDown(ev.Button)
	case KindButtonUp:
		t.ButtonUp(ev.Button)
	case KindMouseMove:
		t.MouseMove(ev.X, ev.Y)
	case KindWheel:
		t.Wheel(ev.Delta)
	case KindText:
		t.TextChar(ev.Ch)
	}
}

// OverrideCursor records the client-requested cursor position for a
// window. The pump calls this when it intercepts a cursor warp while the
// window's cursor is immobilized.
func (d *Dispatcher) OverrideCursor(window registry.WindowID, pos input.Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overrides[window] = pos
}

// ClearCursorOverride forgets a window's override, typically on
// unregister.
func (d *Dispatcher) ClearCursorOverride(window registry.WindowID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.overrides, window)
}

// CursorPosition answers a cursor-position query on the window's behalf.
// While the tracker is immobilizing the cursor and an override exists, the
// override is returned so applications that poll-and-warp the cursor see
// their own value; otherwise the live tracked position is returned.
func (d *Dispatcher) CursorPosition(window registry.WindowID) (input.Position, bool) {
	tracker, ok := d.reg.Lookup(window)
	if !ok {
		return input.Position{}, false
	}

	if tracker.IsImmobilizingCursor() {
		d.mu.RLock()
		pos, ok := d.overrides[window]
		d.mu.RUnlock()
		if ok {
			return pos, true
		}
	}
	return tracker.MousePosition(), true
}
