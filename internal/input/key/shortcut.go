package key

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownKey is returned when a shortcut names a key that is not in
// the name table.
var ErrUnknownKey = errors.New("unknown key name")

// Shortcut is a base key plus the Ctrl/Shift/Alt modifier state, used for
// exact-match queries against the tracker and for configuration files.
type Shortcut struct {
	Code  Code
	Ctrl  bool
	Shift bool
	Alt   bool
}

// IsSet reports whether the shortcut has a base key assigned.
func (s Shortcut) IsSet() bool {
	return s.Code != None
}

// String returns the readable form, e.g. "Ctrl + Shift + F10".
func (s Shortcut) String() string {
	if !s.IsSet() {
		return ""
	}

	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	parts = append(parts, Name(s.Code))

	return strings.Join(parts, " + ")
}

// nameToCode is the reverse of the name table. It is built on first use:
// the name table itself is filled in init, and package-level variable
// initializers would run before that, reading an empty table.
var (
	nameToCodeOnce sync.Once
	nameToCode     map[string]Code
)

// codeForName resolves a case-insensitive key name to its code.
func codeForName(name string) (Code, bool) {
	nameToCodeOnce.Do(func() {
		nameToCode = make(map[string]Code, NumCodes)
		for c := Code(0); c < NumCodes; c++ {
			if n := Name(c); n != unknownName {
				nameToCode[strings.ToLower(n)] = c
			}
		}
	})
	c, ok := nameToCode[strings.ToLower(name)]
	return c, ok
}

// ParseShortcut parses the readable form produced by String. Modifier
// tokens may appear in any order; the last token must be a key name.
// Separators may be "+" with optional whitespace.
func ParseShortcut(spec string) (Shortcut, error) {
	var s Shortcut

	tokens := strings.Split(spec, "+")
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Shortcut{}, fmt.Errorf("parsing shortcut %q: empty token", spec)
		}

		last := i == len(tokens)-1
		switch strings.ToLower(tok) {
		case "ctrl", "control":
			if !last {
				s.Ctrl = true
				continue
			}
		case "shift":
			if !last {
				s.Shift = true
				continue
			}
		case "alt":
			if !last {
				s.Alt = true
				continue
			}
		}

		if !last {
			return Shortcut{}, fmt.Errorf("parsing shortcut %q: %w: %q", spec, ErrUnknownKey, tok)
		}

		code, ok := codeForName(tok)
		if !ok {
			return Shortcut{}, fmt.Errorf("parsing shortcut %q: %w: %q", spec, ErrUnknownKey, tok)
		}
		s.Code = code
	}

	if !s.IsSet() {
		return Shortcut{}, fmt.Errorf("parsing shortcut %q: no base key", spec)
	}
	return s, nil
}
