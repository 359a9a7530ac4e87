package input

import "github.com/dshills/inputtrack/internal/input/key"

// View is a scoped acquisition of the tracker lock. It lets the consumer
// run its whole per-frame sampling pass against one coherent state, then
// release with a single deferred call. Release is idempotent, so it is
// safe on every exit path including early returns.
//
// A View must not outlive its sampling scope; while held, event delivery
// to the tracker blocks.
type View struct {
	t        *Tracker
	released bool
}

// Acquire locks the tracker and returns a view over its state.
func (t *Tracker) Acquire() *View {
	t.mu.Lock()
	return &View{t: t}
}

// Release unlocks the tracker. Further calls are no-ops.
func (v *View) Release() {
	if v.released {
		return
	}
	v.released = true
	v.t.mu.Unlock()
}

// NextFrame advances the frame boundary without dropping the lock, so a
// consumer can sample and age state in one acquisition.
func (v *View) NextFrame() {
	v.t.nextFrameLocked()
}

// IsKeyDown reports whether the key is currently held.
func (v *View) IsKeyDown(code key.Code) bool {
	return v.t.isKeyDown(code)
}

// IsKeyPressed reports whether the key's down edge fired this frame.
func (v *View) IsKeyPressed(code key.Code) bool {
	return v.t.isKeyPressed(code)
}

// IsKeyReleased reports whether the key's up edge fired this frame.
func (v *View) IsKeyReleased(code key.Code) bool {
	return v.t.isKeyReleased(code)
}

// IsKeyRepeated reports whether the key auto-repeated this frame.
func (v *View) IsKeyRepeated(code key.Code) bool {
	return v.t.isKeyRepeated(code)
}

// IsKeyPressedWith matches Tracker.IsKeyPressedWith.
func (v *View) IsKeyPressedWith(code key.Code, ctrl, shift, alt, force bool) bool {
	return v.t.isKeyPressedWith(code, ctrl, shift, alt, force)
}

// IsShortcutPressed matches Tracker.IsShortcutPressed.
func (v *View) IsShortcutPressed(sc key.Shortcut, force bool) bool {
	return v.t.isKeyPressedWith(sc.Code, sc.Ctrl, sc.Shift, sc.Alt, force)
}

// IsAnyKeyDown reports whether any key is currently held.
func (v *View) IsAnyKeyDown() bool {
	return v.t.isAnyKeyDown()
}

// IsAnyKeyPressed reports whether any key's down edge fired this frame.
func (v *View) IsAnyKeyPressed() bool {
	return v.t.isAnyKeyPressed()
}

// IsAnyKeyReleased reports whether any key's up edge fired this frame.
func (v *View) IsAnyKeyReleased() bool {
	return v.t.isAnyKeyReleased()
}

// LastKeyPressed returns the key pressed most recently this frame.
func (v *View) LastKeyPressed() key.Code {
	return v.t.lastPressed
}

// LastKeyReleased returns the key released most recently this frame.
func (v *View) LastKeyReleased() key.Code {
	return v.t.lastReleased
}

// IsButtonDown reports whether the mouse button is currently held.
func (v *View) IsButtonDown(b Button) bool {
	return v.t.isButtonDown(b)
}

// IsButtonPressed reports whether the button's down edge fired this frame.
func (v *View) IsButtonPressed(b Button) bool {
	return v.t.isButtonPressed(b)
}

// IsButtonReleased reports whether the button's up edge fired this frame.
func (v *View) IsButtonReleased(b Button) bool {
	return v.t.isButtonReleased(b)
}

// IsAnyButtonDown reports whether any mouse button is currently held.
func (v *View) IsAnyButtonDown() bool {
	return v.t.isAnyButtonDown()
}

// IsAnyButtonPressed reports whether any button's down edge fired this
// frame.
func (v *View) IsAnyButtonPressed() bool {
	return v.t.isAnyButtonPressed()
}

// IsAnyButtonReleased reports whether any button's up edge fired this
// frame.
func (v *View) IsAnyButtonReleased() bool {
	return v.t.isAnyButtonReleased()
}

// MousePosition returns the current cursor position.
func (v *View) MousePosition() Position {
	return v.t.pos
}

// MouseMovementDelta returns the cursor movement of the most recently
// completed frame.
func (v *View) MouseMovementDelta() Position {
	return v.t.framePos.Sub(v.t.lastFramePos)
}

// WheelDelta returns the wheel movement accumulated this frame.
func (v *View) WheelDelta() int {
	return v.t.wheel
}

// MaxMousePosition returns the stored client-area bounds.
func (v *View) MaxMousePosition() Position {
	return v.t.maxPos
}

// TextInput returns the characters accumulated this frame.
func (v *View) TextInput() string {
	return string(v.t.text)
}

// FrameCount returns the number of frame boundaries seen.
func (v *View) FrameCount() uint64 {
	return v.t.frameCount
}
