package event

import (
	"testing"

	"github.com/dshills/inputtrack/internal/input"
	"github.com/dshills/inputtrack/internal/input/key"
)

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind     Kind
		keyboard bool
		mouse    bool
	}{
		{KindNone, false, false},
		{KindKeyDown, true, false},
		{KindKeyUp, true, false},
		{KindText, true, false},
		{KindButtonDown, false, true},
		{KindButtonUp, false, true},
		{KindMouseMove, false, true},
		{KindWheel, false, true},
	}

	for _, tt := range tests {
		if got := tt.kind.IsKeyboard(); got != tt.keyboard {
			t.Errorf("%s.IsKeyboard() = %v, want %v", tt.kind, got, tt.keyboard)
		}
		if got := tt.kind.IsMouse(); got != tt.mouse {
			t.Errorf("%s.IsMouse() = %v, want %v", tt.kind, got, tt.mouse)
		}
	}
}

func TestConstructorsStampTime(t *testing.T) {
	events := []Event{
		KeyDown(key.CodeA),
		KeyUp(key.CodeA),
		ButtonDown(input.ButtonLeft),
		ButtonUp(input.ButtonLeft),
		MouseMove(1, 2),
		Wheel(-1),
		Text('x'),
	}

	for _, ev := range events {
		if ev.Time.IsZero() {
			t.Errorf("%s has zero timestamp", ev.Kind)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{KeyDown(key.CodeEscape), "key-down Escape"},
		{KeyUp(key.CodeSpace), "key-up Space"},
		{ButtonDown(input.ButtonLeft), "button-down left"},
		{MouseMove(3, 4), "mouse-move (3, 4)"},
		{Wheel(2), "wheel +2"},
		{Wheel(-1), "wheel -1"},
		{Text('q'), `text 'q'`},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}
