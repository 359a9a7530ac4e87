package key

import "testing"

func TestCodeValid(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{None, true},
		{CodeA, true},
		{Code(255), true},
		{Code(-1), false},
		{Code(256), false},
		{Code(1000), false},
	}

	for _, tt := range tests {
		if got := tt.code.Valid(); got != tt.want {
			t.Errorf("Code(%d).Valid() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCodeIsModifier(t *testing.T) {
	mods := []Code{
		CodeShift, CodeControl, CodeAlt,
		CodeLeftShift, CodeRightShift,
		CodeLeftControl, CodeRightControl,
		CodeLeftAlt, CodeRightAlt,
	}
	for _, c := range mods {
		if !c.IsModifier() {
			t.Errorf("Code(%#x).IsModifier() = false, want true", int(c))
		}
	}

	for _, c := range []Code{CodeA, CodeF1, CodeSpace, None} {
		if c.IsModifier() {
			t.Errorf("Code(%#x).IsModifier() = true, want false", int(c))
		}
	}
}

func TestCodeClassifiers(t *testing.T) {
	if !CodeF12.IsFunctionKey() || CodeA.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
	if !CodeLeft.IsArrowKey() || !CodeDown.IsArrowKey() || CodeSpace.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if !Code0.IsDigit() || !Code9.IsDigit() || CodeA.IsDigit() {
		t.Error("IsDigit misclassified")
	}
	if !CodeA.IsLetter() || !CodeZ.IsLetter() || Code0.IsLetter() {
		t.Error("IsLetter misclassified")
	}
	if !CodeNumpad0.IsNumpad() || !CodeDivide.IsNumpad() || Code0.IsNumpad() {
		t.Error("IsNumpad misclassified")
	}
}
