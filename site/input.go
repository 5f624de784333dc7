package site

import "strings"

// Action is a page-level keyboard command.
type Action int

const (
	NoAction Action = iota
	ToggleStats
	ToggleDebug
	CycleParticles
	CloseDetail
)

// KeyMap maps alternative keys to canonical key codes.
var KeyMap = map[int]int{
	8:  27, // Backspace => Esc
	78: 77, // N => M
}

// TranslateKeyCode converts alternative key codes to canonical key codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// ActionFor returns the command bound to a raw key code.
func ActionFor(rawKeyCode int) Action {
	switch rawKeyCode {
	case 120: // F9
		return ToggleDebug
	case 121: // F10
		return ToggleStats
	}

	switch TranslateKeyCode(rawKeyCode) {
	case 77: // M
		return CycleParticles
	case 27: // Esc
		return CloseDetail
	}
	return NoAction
}

// KeyPress is a keydown as the page saw it.
type KeyPress struct {
	Code int
	// Typing is set when focus is in a form field or editable content.
	Typing bool
	// Modified is set while Ctrl, Alt or Meta is held.
	Modified bool
}

// Action returns the command for k. Keys typed into a field or pressed
// with a modifier belong to the browser and map to NoAction.
func (k KeyPress) Action() Action {
	if k.Typing || k.Modified {
		return NoAction
	}
	return ActionFor(k.Code)
}

// IsEditable reports whether an element with the given tag name takes
// text input.
func IsEditable(tagName string, contentEditable bool) bool {
	if contentEditable {
		return true
	}
	switch strings.ToUpper(tagName) {
	case "INPUT", "TEXTAREA", "SELECT":
		return true
	}
	return false
}
