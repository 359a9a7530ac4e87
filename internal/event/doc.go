// Package event defines the normalized input event records produced by the
// platform message pump and the dispatcher that delivers them to per-window
// trackers.
//
// The dispatcher embodies the window-procedure contract: Dispatch applies
// the event to the window's tracker so the overlay always observes input,
// then reports whether the pump should swallow the raw message instead of
// passing it on to the underlying application, based on the tracker's
// blocking latches. Taps let other components observe or consume events
// before they reach a tracker.
package event
