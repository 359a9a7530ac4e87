package input

import (
	"sync"
	"time"

	"github.com/dshills/inputtrack/internal/input/key"
)

// DefaultGracePeriod is how long a blocking latch keeps reading as active
// after either toggle, absorbing event-delivery lag.
const DefaultGracePeriod = 125 * time.Millisecond

// keyState is the tri-state record kept per key and per mouse button.
type keyState struct {
	// down is the live state as of the most recent event.
	down bool

	// lastDown is down as sampled at the most recent frame boundary.
	// It is written only by NextFrame.
	lastDown bool

	// pressed latches an up-to-down transition since the last boundary.
	pressed bool

	// released latches a down-to-up transition since the last boundary.
	released bool

	// downEdges counts down events since the last boundary. More than one
	// while the key is held means the OS auto-repeat fired mid-frame.
	downEdges uint8

	// changedAt is the wall-clock time of the last transition.
	changedAt time.Time
}

// latch is a blocking flag with its last-toggle timestamp.
type latch struct {
	enabled   bool
	toggledAt time.Time
}

// active reports whether the latch is set or was toggled within the grace
// period ending at now.
func (l latch) active(now time.Time, grace time.Duration) bool {
	return l.enabled || (!l.toggledAt.IsZero() && now.Sub(l.toggledAt) < grace)
}

// Tracker owns all mutable input state for one window. All exported
// methods are safe for concurrent use; see the package documentation for
// the locking model.
type Tracker struct {
	mu sync.Mutex

	keys    [key.NumCodes]keyState
	buttons [ButtonCount]keyState

	lastPressed  key.Code
	lastReleased key.Code

	// pos is the live cursor position. framePos and lastFramePos are the
	// positions snapshotted at the two most recent frame boundaries; their
	// difference is the per-frame movement delta, stable within a frame.
	pos          Position
	framePos     Position
	lastFramePos Position
	seenMove     bool

	maxPos Position
	wheel  int

	text []rune

	blockMouse       latch
	blockKeyboard    latch
	immobilizeCursor latch

	grace      time.Duration
	frameCount uint64

	metrics *Metrics

	// now is the clock; tests substitute a fake.
	now func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithGracePeriod overrides the blocking-latch grace period.
func WithGracePeriod(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.grace = d
		}
	}
}

// WithMetrics attaches a shared metrics collector instead of the
// tracker-private default.
func WithMetrics(m *Metrics) Option {
	return func(t *Tracker) {
		if m != nil {
			t.metrics = m
		}
	}
}

// New creates a tracker with every key and button up, the cursor at the
// origin, and all blocking latches inactive.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		grace:   DefaultGracePeriod,
		metrics: NewMetrics(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GracePeriod returns the blocking-latch grace period.
func (t *Tracker) GracePeriod() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grace
}

// SetGracePeriod adjusts the blocking-latch grace period. Used by
// configuration reload; non-positive values are ignored.
func (t *Tracker) SetGracePeriod(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.grace = d
}

// Metrics returns the tracker's metrics collector.
func (t *Tracker) Metrics() *Metrics {
	return t.metrics
}

// press records a down event on a state record. It reports whether the
// record transitioned from up to down (the original edge, as opposed to an
// OS auto-repeat delivery).
func (s *keyState) press(now time.Time) bool {
	edge := !s.down
	s.down = true
	if edge {
		s.pressed = true
	}
	if s.downEdges < 255 {
		s.downEdges++
	}
	s.changedAt = now
	return edge
}

// release records an up event. It reports whether the record was down.
func (s *keyState) release(now time.Time) bool {
	if !s.down {
		return false
	}
	s.down = false
	s.released = true
	s.changedAt = now
	return true
}

// age moves the record across a frame boundary.
func (s *keyState) age() {
	s.lastDown = s.down
	s.pressed = false
	s.released = false
	s.downEdges = 0
}

// KeyDown records a key-down event. Out-of-range codes are ignored.
// Repeat deliveries for an already-down key refresh the timestamp and the
// per-frame edge counter without re-latching the pressed edge.
func (t *Tracker) KeyDown(code key.Code) {
	if !code.Valid() {
		t.metrics.RecordIgnored()
		return
	}

	t.mu.Lock()
	if t.keys[code].press(t.now()) {
		t.lastPressed = code
	}
	t.mu.Unlock()

	t.metrics.RecordKeyEvent()
}

// KeyUp records a key-up event. Out-of-range codes are ignored.
func (t *Tracker) KeyUp(code key.Code) {
	if !code.Valid() {
		t.metrics.RecordIgnored()
		return
	}

	t.mu.Lock()
	if t.keys[code].release(t.now()) {
		t.lastReleased = code
	}
	t.mu.Unlock()

	t.metrics.RecordKeyEvent()
}

// ButtonDown records a mouse button press. Unknown buttons are ignored.
func (t *Tracker) ButtonDown(b Button) {
	if !b.Valid() {
		t.metrics.RecordIgnored()
		return
	}

	t.mu.Lock()
	t.buttons[b].press(t.now())
	t.mu.Unlock()

	t.metrics.RecordMouseEvent()
}

// ButtonUp records a mouse button release. Unknown buttons are ignored.
func (t *Tracker) ButtonUp(b Button) {
	if !b.Valid() {
		t.metrics.RecordIgnored()
		return
	}

	t.mu.Lock()
	t.buttons[b].release(t.now())
	t.mu.Unlock()

	t.metrics.RecordMouseEvent()
}

// MouseMove records the current cursor position. The frame snapshots used
// for movement deltas are only updated at the frame boundary. The first
// move after construction establishes the baseline, so the tracker never
// reports a spurious jump from the origin to wherever the cursor happened
// to be.
func (t *Tracker) MouseMove(x, y int) {
	t.mu.Lock()
	p := Position{X: x, Y: y}
	if !t.seenMove {
		t.seenMove = true
		t.framePos = p
		t.lastFramePos = p
	}
	t.pos = p
	t.mu.Unlock()

	t.metrics.RecordMouseEvent()
}

// Wheel accumulates a wheel delta into the per-frame total.
func (t *Tracker) Wheel(delta int) {
	t.mu.Lock()
	t.wheel += delta
	t.mu.Unlock()

	t.metrics.RecordMouseEvent()
}

// TextChar appends a character to the per-frame text buffer.
func (t *Tracker) TextChar(ch rune) {
	t.mu.Lock()
	t.text = append(t.text, ch)
	t.mu.Unlock()

	t.metrics.RecordTextEvent()
}

// NextFrame advances the frame boundary: key and button tables age, the
// per-frame accumulators (wheel delta, text buffer, edge latches) clear,
// and the previous-frame mouse position is snapshotted. The consumer must
// call this exactly once per rendered frame; redundant calls are harmless.
func (t *Tracker) NextFrame() {
	t.mu.Lock()
	t.nextFrameLocked()
	t.mu.Unlock()
}

func (t *Tracker) nextFrameLocked() {
	for i := range t.keys {
		t.keys[i].age()
	}
	for i := range t.buttons {
		t.buttons[i].age()
	}

	t.lastPressed = key.None
	t.lastReleased = key.None
	t.wheel = 0
	t.lastFramePos = t.framePos
	t.framePos = t.pos
	t.text = t.text[:0]
	t.frameCount++

	t.metrics.RecordFrame()
}

// FrameCount returns the number of frame boundaries seen. It is a
// liveness signal for the window's render loop, not part of edge
// detection.
func (t *Tracker) FrameCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frameCount
}

// IsKeyDown reports whether the key is currently held.
func (t *Tracker) IsKeyDown(code key.Code) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyDown(code)
}

// IsKeyPressed reports whether the key's original down edge fired since
// the last frame boundary.
func (t *Tracker) IsKeyPressed(code key.Code) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyPressed(code)
}

// IsKeyReleased reports whether the key's up edge fired since the last
// frame boundary.
func (t *Tracker) IsKeyReleased(code key.Code) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyReleased(code)
}

// IsKeyRepeated reports whether the key is held and received more than one
// down event since the last frame boundary (OS auto-repeat mid-frame).
func (t *Tracker) IsKeyRepeated(code key.Code) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyRepeated(code)
}

// IsKeyPressedWith reports whether the key's down edge fired with the
// requested Ctrl/Shift/Alt state. With force false, modifiers requested as
// false are ignored; with force true all three must match exactly, which
// is what exact shortcut matching wants.
func (t *Tracker) IsKeyPressedWith(code key.Code, ctrl, shift, alt, force bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyPressedWith(code, ctrl, shift, alt, force)
}

// IsShortcutPressed reports whether the shortcut's base key down edge
// fired with its modifier state. force has the IsKeyPressedWith meaning.
func (t *Tracker) IsShortcutPressed(sc key.Shortcut, force bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isKeyPressedWith(sc.Code, sc.Ctrl, sc.Shift, sc.Alt, force)
}

// IsAnyKeyDown reports whether any key is currently held.
func (t *Tracker) IsAnyKeyDown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyKeyDown()
}

// IsAnyKeyPressed reports whether any key's down edge fired this frame.
func (t *Tracker) IsAnyKeyPressed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyKeyPressed()
}

// IsAnyKeyReleased reports whether any key's up edge fired this frame.
func (t *Tracker) IsAnyKeyReleased() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyKeyReleased()
}

// LastKeyPressed returns the key whose down edge fired most recently in
// the current frame, or key.None if none fired.
func (t *Tracker) LastKeyPressed() key.Code {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastPressed
}

// LastKeyReleased returns the key whose up edge fired most recently in
// the current frame, or key.None if none fired.
func (t *Tracker) LastKeyReleased() key.Code {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastReleased
}

// IsButtonDown reports whether the mouse button is currently held.
func (t *Tracker) IsButtonDown(b Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isButtonDown(b)
}

// IsButtonPressed reports whether the button's down edge fired this frame.
func (t *Tracker) IsButtonPressed(b Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isButtonPressed(b)
}

// IsButtonReleased reports whether the button's up edge fired this frame.
func (t *Tracker) IsButtonReleased(b Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isButtonReleased(b)
}

// IsAnyButtonDown reports whether any mouse button is currently held.
func (t *Tracker) IsAnyButtonDown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyButtonDown()
}

// IsAnyButtonPressed reports whether any button's down edge fired this
// frame.
func (t *Tracker) IsAnyButtonPressed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyButtonPressed()
}

// IsAnyButtonReleased reports whether any button's up edge fired this
// frame.
func (t *Tracker) IsAnyButtonReleased() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isAnyButtonReleased()
}

// MousePosition returns the current cursor position.
func (t *Tracker) MousePosition() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// MouseMovementDelta returns the cursor movement of the most recently
// completed frame: the difference between the positions snapshotted at the
// two latest boundaries. It is stable for the duration of a frame, so the
// consumer gets one coherent delta per frame rather than a value that
// drifts as move events arrive.
func (t *Tracker) MouseMovementDelta() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.framePos.Sub(t.lastFramePos)
}

// WheelDelta returns the wheel movement accumulated this frame.
func (t *Tracker) WheelDelta() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wheel
}

// MaxMousePosition returns the client-area bounds last supplied by the
// window geometry owner. The tracker stores it opaquely.
func (t *Tracker) MaxMousePosition() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxPos
}

// SetMaxMousePosition records the client-area bounds. Called by the
// collaborator that owns window geometry, typically on resize.
func (t *Tracker) SetMaxMousePosition(p Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maxPos = p
}

// TextInput returns the characters accumulated since the last frame
// boundary.
func (t *Tracker) TextInput() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.text)
}

// Lock-free query helpers. Callers hold t.mu.

func (t *Tracker) isKeyDown(code key.Code) bool {
	return code.Valid() && t.keys[code].down
}

func (t *Tracker) isKeyPressed(code key.Code) bool {
	return code.Valid() && t.keys[code].pressed
}

func (t *Tracker) isKeyReleased(code key.Code) bool {
	return code.Valid() && t.keys[code].released
}

func (t *Tracker) isKeyRepeated(code key.Code) bool {
	return code.Valid() && t.keys[code].down && t.keys[code].downEdges > 1
}

func (t *Tracker) isKeyPressedWith(code key.Code, ctrl, shift, alt, force bool) bool {
	if !t.isKeyPressed(code) {
		return false
	}
	if force {
		return ctrl == t.isKeyDown(key.CodeControl) &&
			shift == t.isKeyDown(key.CodeShift) &&
			alt == t.isKeyDown(key.CodeAlt)
	}
	return (!ctrl || t.isKeyDown(key.CodeControl)) &&
		(!shift || t.isKeyDown(key.CodeShift)) &&
		(!alt || t.isKeyDown(key.CodeAlt))
}

func (t *Tracker) isAnyKeyDown() bool {
	for i := range t.keys {
		if t.keys[i].down {
			return true
		}
	}
	return false
}

func (t *Tracker) isAnyKeyPressed() bool {
	for i := range t.keys {
		if t.keys[i].pressed {
			return true
		}
	}
	return false
}

func (t *Tracker) isAnyKeyReleased() bool {
	for i := range t.keys {
		if t.keys[i].released {
			return true
		}
	}
	return false
}

func (t *Tracker) isButtonDown(b Button) bool {
	return b.Valid() && t.buttons[b].down
}

func (t *Tracker) isButtonPressed(b Button) bool {
	return b.Valid() && t.buttons[b].pressed
}

func (t *Tracker) isButtonReleased(b Button) bool {
	return b.Valid() && t.buttons[b].released
}

func (t *Tracker) isAnyButtonDown() bool {
	for i := range t.buttons {
		if t.buttons[i].down {
			return true
		}
	}
	return false
}

func (t *Tracker) isAnyButtonPressed() bool {
	for i := range t.buttons {
		if t.buttons[i].pressed {
			return true
		}
	}
	return false
}

func (t *Tracker) isAnyButtonReleased() bool {
	for i := range t.buttons {
		if t.buttons[i].released {
			return true
		}
	}
	return false
}
