package input

// BlockMouse latches whether mouse events should be withheld from the
// underlying application. The event-delivery layer consults
// IsBlockingMouseInput before forwarding a raw event.
func (t *Tracker) BlockMouse(enable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.blockMouse.enabled = enable
	t.blockMouse.toggledAt = t.now()
}

// BlockKeyboard latches whether keyboard events should be withheld from
// the underlying application.
func (t *Tracker) BlockKeyboard(enable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.blockKeyboard.enabled = enable
	t.blockKeyboard.toggledAt = t.now()
}

// ImmobilizeCursor latches whether cursor-position queries answered on the
// window's behalf should report the client-overridden position instead of
// the real one. Separate from mouse blocking so applications that warp the
// cursor can be held still without suppressing their button events.
func (t *Tracker) ImmobilizeCursor(enable bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.immobilizeCursor.enabled = enable
	t.immobilizeCursor.toggledAt = t.now()
}

// IsBlockingMouseInput reports whether the mouse latch is set or was
// toggled within the grace period. Turning the latch off intentionally
// still reads as active until the grace period elapses.
func (t *Tracker) IsBlockingMouseInput() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.blockMouse.active(t.now(), t.grace)
}

// IsBlockingKeyboardInput reports whether the keyboard latch is set or was
// toggled within the grace period.
func (t *Tracker) IsBlockingKeyboardInput() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.blockKeyboard.active(t.now(), t.grace)
}

// IsImmobilizingCursor reports whether the cursor latch is set or was
// toggled within the grace period.
func (t *Tracker) IsImmobilizingCursor() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.immobilizeCursor.active(t.now(), t.grace)
}
