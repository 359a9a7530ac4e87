package input

import "fmt"

// Button identifies a mouse button slot in the tracker's button table.
type Button int

const (
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (wheel click).
	ButtonMiddle
	// ButtonX1 is the first extra button (back).
	ButtonX1
	// ButtonX2 is the second extra button (forward).
	ButtonX2

	// ButtonCount is the size of the button state table.
	ButtonCount
)

// Valid reports whether the button falls inside the tracked table.
func (b Button) Valid() bool {
	return b >= ButtonLeft && b < ButtonCount
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Position is a cursor coordinate in window client space.
type Position struct {
	X int
	Y int
}

// Sub returns the componentwise difference p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal reports whether two positions are the same point.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// IsZero reports whether the position is the origin.
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String returns "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
