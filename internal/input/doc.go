// Package input implements the per-window input state tracker.
//
// A Tracker converts the asynchronous event stream delivered by the
// surrounding message pump into a frame-quantized snapshot the render loop
// can query without races. Edge detection (pressed this frame, held,
// released this frame, auto-repeated) is resolved against frame boundaries:
// the consumer calls NextFrame exactly once per rendered frame, which ages
// the key and button tables and clears the per-frame accumulators.
//
// # Locking
//
// Every public entry point acquires the tracker's mutex for the duration of
// the call, so mutations and queries are safe from any goroutine. Query
// logic lives in unexported lock-free helpers and locking happens once at
// the public boundary; this stands in for the recursive mutex a C++
// rendition would use. A consumer that needs several queries to observe one
// coherent state (position, delta, wheel and buttons together) calls
// Acquire and samples through the returned View, releasing it when done:
//
//	v := tracker.Acquire()
//	defer v.Release()
//	delta := v.MouseMovementDelta()
//	wheel := v.WheelDelta()
//	v.NextFrame()
//
// # Blocking latches
//
// BlockMouse, BlockKeyboard and ImmobilizeCursor latch an intent that the
// event-delivery layer enforces. A latch reads as active while explicitly
// set and for a grace period after either toggle, absorbing the one-frame
// lag before the next delivered event honors it.
package input
