// Package key provides virtual-key codes, human-readable key names, and
// keyboard shortcut representations for the input tracker.
//
// Codes follow the Windows virtual-key numbering (0-255), which is the
// namespace the event-delivery layer normalizes to. The package is pure:
// name lookup and shortcut parsing have no dependency on tracker state.
//
// # Shortcuts
//
// A Shortcut pairs a base key code with the Ctrl/Shift/Alt modifiers and
// round-trips through a readable text form:
//
//	Ctrl + Shift + F10
//	Alt + F4
//	Home
//
// ParseShortcut accepts that form case-insensitively, which is what the
// configuration loader feeds it.
package key
