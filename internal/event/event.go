package event

import (
	"fmt"
	"time"

	"github.com/dshills/inputtrack/internal/input"
	"github.com/dshills/inputtrack/internal/input/key"
)

// Kind identifies the type of a normalized input event.
type Kind uint8

const (
	// KindNone is the zero event kind.
	KindNone Kind = iota
	// KindKeyDown is a key press or OS auto-repeat delivery.
	KindKeyDown
	// KindKeyUp is a key release.
	KindKeyUp
	// KindButtonDown is a mouse button press.
	KindButtonDown
	// KindButtonUp is a mouse button release.
	KindButtonUp
	// KindMouseMove is a cursor position update.
	KindMouseMove
	// KindWheel is a mouse wheel tick.
	KindWheel
	// KindText is a translated character delivery.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindButtonDown:
		return "button-down"
	case KindButtonUp:
		return "button-up"
	case KindMouseMove:
		return "mouse-move"
	case KindWheel:
		return "wheel"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// IsKeyboard reports whether the kind is governed by the keyboard
// blocking latch.
func (k Kind) IsKeyboard() bool {
	return k == KindKeyDown || k == KindKeyUp || k == KindText
}

// IsMouse reports whether the kind is governed by the mouse blocking
// latch.
func (k Kind) IsMouse() bool {
	return k == KindButtonDown || k == KindButtonUp || k == KindMouseMove || k == KindWheel
}

// Event is one normalized input record. Only the fields relevant to the
// kind are meaningful.
type Event struct {
	// Kind is the event type.
	Kind Kind

	// Code is the virtual-key code for key events.
	Code key.Code

	// Button is the mouse button for button events.
	Button input.Button

	// X, Y is the cursor position for mouse-move events.
	X int
	Y int

	// Delta is the wheel movement for wheel events.
	Delta int

	// Ch is the character for text events.
	Ch rune

	// Time is when the pump produced the event.
	Time time.Time
}

// KeyDown creates a key-down event stamped with the current time.
func KeyDown(code key.Code) Event {
	return Event{Kind: KindKeyDown, Code: code, Time: time.Now()}
}

// KeyUp creates a key-up event.
func KeyUp(code key.Code) Event {
	return Event{Kind: KindKeyUp, Code: code, Time: time.Now()}
}

// ButtonDown creates a button-down event.
func ButtonDown(b input.Button) Event {
	return Event{Kind: KindButtonDown, Button: b, Time: time.Now()}
}

// ButtonUp creates a button-up event.
func ButtonUp(b input.Button) Event {
	return Event{Kind: KindButtonUp, Button: b, Time: time.Now()}
}

// MouseMove creates a mouse-move event.
func MouseMove(x, y int) Event {
	return Event{Kind: KindMouseMove, X: x, Y: y, Time: time.Now()}
}

// Wheel creates a wheel event.
func Wheel(delta int) Event {
	return Event{Kind: KindWheel, Delta: delta, Time: time.Now()}
}

// Text creates a text character event.
func Text(ch rune) Event {
	return Event{Kind: KindText, Ch: ch, Time: time.Now()}
}

// String returns a compact description for logging.
func (e Event) String() string {
	switch e.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s %s", e.Kind, key.Name(e.Code))
	case KindButtonDown, KindButtonUp:
		return fmt.Sprintf("%s %s", e.Kind, e.Button)
	case KindMouseMove:
		return fmt.Sprintf("%s (%d, %d)", e.Kind, e.X, e.Y)
	case KindWheel:
		return fmt.Sprintf("%s %+d", e.Kind, e.Delta)
	case KindText:
		return fmt.Sprintf("%s %q", e.Kind, e.Ch)
	default:
		return e.Kind.String()
	}
}
