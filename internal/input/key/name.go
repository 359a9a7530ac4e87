package key

import "fmt"

// unknownName is returned for codes with no assigned name.
const unknownName = "Unknown"

// names is the static code-to-name table. Sparse entries are listed
// literally; the contiguous ranges (digits, letters, numpad, F-keys) are
// filled by init.
var names [NumCodes]string

var sparseNames = map[Code]string{
	0x01:             "Left Mouse",
	0x02:             "Right Mouse",
	0x03:             "Cancel",
	0x04:             "Middle Mouse",
	0x05:             "X1 Mouse",
	0x06:             "X2 Mouse",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeClear:        "Clear",
	CodeEnter:        "Enter",
	CodeShift:        "Shift",
	CodeControl:      "Control",
	CodeAlt:          "Alt",
	CodePause:        "Pause",
	CodeCapsLock:     "Caps Lock",
	CodeEscape:       "Escape",
	CodeSpace:        "Space",
	CodePageUp:       "Page Up",
	CodePageDown:     "Page Down",
	CodeEnd:          "End",
	CodeHome:         "Home",
	CodeLeft:         "Left Arrow",
	CodeUp:           "Up Arrow",
	CodeRight:        "Right Arrow",
	CodeDown:         "Down Arrow",
	0x29:             "Select",
	0x2A:             "Print",
	0x2B:             "Execute",
	CodePrintScreen:  "Print Screen",
	CodeInsert:       "Insert",
	CodeDelete:       "Delete",
	0x2F:             "Help",
	CodeLeftWin:      "Left Windows",
	CodeRightWin:     "Right Windows",
	CodeApps:         "Apps",
	CodeSleep:        "Sleep",
	CodeMultiply:     "Numpad *",
	CodeAdd:          "Numpad +",
	0x6C:             "Numpad Separator",
	CodeSubtract:     "Numpad -",
	CodeDecimal:      "Numpad Decimal",
	CodeDivide:       "Numpad /",
	CodeNumLock:      "Num Lock",
	CodeScrollLock:   "Scroll Lock",
	CodeLeftShift:    "Left Shift",
	CodeRightShift:   "Right Shift",
	CodeLeftControl:  "Left Control",
	CodeRightControl: "Right Control",
	CodeLeftAlt:      "Left Alt",
	CodeRightAlt:     "Right Alt",
	0xA6:             "Browser Back",
	0xA7:             "Browser Forward",
	0xA8:             "Browser Refresh",
	0xA9:             "Browser Stop",
	0xAA:             "Browser Search",
	0xAB:             "Browser Favorites",
	0xAC:             "Browser Home",
	0xAD:             "Volume Mute",
	0xAE:             "Volume Down",
	0xAF:             "Volume Up",
	0xB0:             "Next Track",
	0xB1:             "Previous Track",
	0xB2:             "Media Stop",
	0xB3:             "Media Play/Pause",
	CodeSemicolon:    "OEM ;",
	CodeEquals:       "OEM =",
	CodeComma:        "OEM ,",
	CodeMinus:        "OEM -",
	CodePeriod:       "OEM .",
	CodeSlash:        "OEM /",
	CodeBackquote:    "OEM ~",
	CodeLeftBracket:  "OEM [",
	CodeBackslash:    "OEM \\",
	CodeRightBracket: "OEM ]",
	CodeQuote:        "OEM '",
	0xDF:             "OEM 8",
	0xE2:             "OEM <",
}

func init() {
	for c, name := range sparseNames {
		names[c] = name
	}
	for c := Code0; c <= Code9; c++ {
		names[c] = string(rune('0' + (c - Code0)))
	}
	for c := CodeA; c <= CodeZ; c++ {
		names[c] = string(rune('A' + (c - CodeA)))
	}
	for c := CodeNumpad0; c <= CodeNumpad9; c++ {
		names[c] = fmt.Sprintf("Numpad %d", c-CodeNumpad0)
	}
	for c := CodeF1; c <= CodeF24; c++ {
		names[c] = fmt.Sprintf("F%d", c-CodeF1+1)
	}
}

// Name returns the human-readable name for a virtual-key code.
// Unnamed and out-of-range codes return "Unknown".
func Name(c Code) string {
	if !c.Valid() || names[c] == "" {
		return unknownName
	}
	return names[c]
}
