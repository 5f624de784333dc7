package site

import "testing"

func TestTranslateKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"Backspace translates to Esc", 8, 27},
		{"N translates to M", 78, 77},
		{"M stays M", 77, 77},
		{"Enter stays Enter", 13, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKeyCode(tt.input); got != tt.expected {
				t.Errorf("Expected TranslateKeyCode(%d) to be %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected Action
	}{
		{"F9 toggles debug", 120, ToggleDebug},
		{"F10 toggles stats", 121, ToggleStats},
		{"M cycles particles", 77, CycleParticles},
		{"N cycles particles", 78, CycleParticles},
		{"Esc closes detail", 27, CloseDetail},
		{"Backspace closes detail", 8, CloseDetail},
		{"A does nothing", 65, NoAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActionFor(tt.input); got != tt.expected {
				t.Errorf("Expected ActionFor(%d) to be %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestKeyPress_Action(t *testing.T) {
	tests := []struct {
		name     string
		input    KeyPress
		expected Action
	}{
		{"bare M cycles particles", KeyPress{Code: 77}, CycleParticles},
		{"N in a field types", KeyPress{Code: 78, Typing: true}, NoAction},
		{"Backspace in a field deletes", KeyPress{Code: 8, Typing: true}, NoAction},
		{"F10 in a field is left alone", KeyPress{Code: 121, Typing: true}, NoAction},
		{"Ctrl+N opens a window", KeyPress{Code: 78, Modified: true}, NoAction},
		{"bare Esc closes detail", KeyPress{Code: 27}, CloseDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Action(); got != tt.expected {
				t.Errorf("Expected %+v to map to %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestIsEditable(t *testing.T) {
	tests := []struct {
		name            string
		tag             string
		contentEditable bool
		expected        bool
	}{
		{"input", "INPUT", false, true},
		{"textarea", "TEXTAREA", false, true},
		{"select", "SELECT", false, true},
		{"lowercase input", "input", false, true},
		{"editable div", "DIV", true, true},
		{"button", "BUTTON", false, false},
		{"body", "BODY", false, false},
		{"window target", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEditable(tt.tag, tt.contentEditable); got != tt.expected {
				t.Errorf("Expected IsEditable(%q, %v) to be %v, got %v", tt.tag, tt.contentEditable, tt.expected, got)
			}
		})
	}
}
