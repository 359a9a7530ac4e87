package key

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeEscape, "Escape"},
		{CodeEnter, "Enter"},
		{CodeSpace, "Space"},
		{CodeShift, "Shift"},
		{CodeLeft, "Left Arrow"},
		{Code0, "0"},
		{Code9, "9"},
		{CodeA, "A"},
		{CodeZ, "Z"},
		{CodeF1, "F1"},
		{CodeF12, "F12"},
		{CodeF24, "F24"},
		{CodeNumpad0, "Numpad 0"},
		{CodeAdd, "Numpad +"},
		{CodeSemicolon, "OEM ;"},
		{0x01, "Left Mouse"},
		{0x07, "Unknown"},
		{Code(-1), "Unknown"},
		{Code(512), "Unknown"},
	}

	for _, tt := range tests {
		if got := Name(tt.code); got != tt.want {
			t.Errorf("Name(%#x) = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeHome.String(); got != "Home" {
		t.Errorf("CodeHome.String() = %q, want %q", got, "Home")
	}
}
