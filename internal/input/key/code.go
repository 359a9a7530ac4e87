package key

// Code identifies a keyboard key by its virtual-key code (0-255).
// Codes outside that range are never stored by the tracker; mutation
// entry points treat them as no-ops and queries return zero values.
type Code int

// NumCodes is the size of the key state table.
const NumCodes = 256

// None is the sentinel for "no key". It is returned by LastKeyPressed and
// LastKeyReleased when no edge fired in the current frame.
const None Code = 0

// Virtual-key codes for the common key set.
const (
	CodeBackspace   Code = 0x08
	CodeTab         Code = 0x09
	CodeClear       Code = 0x0C
	CodeEnter       Code = 0x0D
	CodeShift       Code = 0x10
	CodeControl     Code = 0x11
	CodeAlt         Code = 0x12
	CodePause       Code = 0x13
	CodeCapsLock    Code = 0x14
	CodeEscape      Code = 0x1B
	CodeSpace       Code = 0x20
	CodePageUp      Code = 0x21
	CodePageDown    Code = 0x22
	CodeEnd         Code = 0x23
	CodeHome        Code = 0x24
	CodeLeft        Code = 0x25
	CodeUp          Code = 0x26
	CodeRight       Code = 0x27
	CodeDown        Code = 0x28
	CodePrintScreen Code = 0x2C
	CodeInsert      Code = 0x2D
	CodeDelete      Code = 0x2E

	Code0 Code = 0x30
	Code9 Code = 0x39
	CodeA Code = 0x41
	CodeZ Code = 0x5A

	CodeLeftWin  Code = 0x5B
	CodeRightWin Code = 0x5C
	CodeApps     Code = 0x5D
	CodeSleep    Code = 0x5F

	CodeNumpad0  Code = 0x60
	CodeNumpad9  Code = 0x69
	CodeMultiply Code = 0x6A
	CodeAdd      Code = 0x6B
	CodeSubtract Code = 0x6D
	CodeDecimal  Code = 0x6E
	CodeDivide   Code = 0x6F

	CodeF1  Code = 0x70
	CodeF2  Code = 0x71
	CodeF3  Code = 0x72
	CodeF4  Code = 0x73
	CodeF5  Code = 0x74
	CodeF6  Code = 0x75
	CodeF7  Code = 0x76
	CodeF8  Code = 0x77
	CodeF9  Code = 0x78
	CodeF10 Code = 0x79
	CodeF11 Code = 0x7A
	CodeF12 Code = 0x7B
	CodeF24 Code = 0x87

	CodeNumLock    Code = 0x90
	CodeScrollLock Code = 0x91

	CodeLeftShift    Code = 0xA0
	CodeRightShift   Code = 0xA1
	CodeLeftControl  Code = 0xA2
	CodeRightControl Code = 0xA3
	CodeLeftAlt      Code = 0xA4
	CodeRightAlt     Code = 0xA5

	CodeSemicolon    Code = 0xBA
	CodeEquals       Code = 0xBB
	CodeComma        Code = 0xBC
	CodeMinus        Code = 0xBD
	CodePeriod       Code = 0xBE
	CodeSlash        Code = 0xBF
	CodeBackquote    Code = 0xC0
	CodeLeftBracket  Code = 0xDB
	CodeBackslash    Code = 0xDC
	CodeRightBracket Code = 0xDD
	CodeQuote        Code = 0xDE
)

// Valid reports whether the code falls inside the tracked 0-255 range.
func (c Code) Valid() bool {
	return c >= 0 && c < NumCodes
}

// IsModifier reports whether the code is a modifier key, including the
// left/right variants the OS may deliver instead of the generic codes.
func (c Code) IsModifier() bool {
	switch c {
	case CodeShift, CodeControl, CodeAlt,
		CodeLeftShift, CodeRightShift,
		CodeLeftControl, CodeRightControl,
		CodeLeftAlt, CodeRightAlt:
		return true
	}
	return false
}

// IsFunctionKey reports whether the code is a function key (F1-F24).
func (c Code) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF24
}

// IsArrowKey reports whether the code is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= CodeLeft && c <= CodeDown
}

// IsDigit reports whether the code is a top-row digit key.
func (c Code) IsDigit() bool {
	return c >= Code0 && c <= Code9
}

// IsLetter reports whether the code is a letter key.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsNumpad reports whether the code belongs to the numeric keypad.
func (c Code) IsNumpad() bool {
	return c >= CodeNumpad0 && c <= CodeDivide
}

// String returns the human-readable name of the code.
func (c Code) String() string {
	return Name(c)
}
