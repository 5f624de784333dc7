package site

import "testing"

func TestConfig_CardSelector(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.CardSelector(); got != ".drink-card[data-drink]" {
		t.Errorf("Expected .drink-card[data-drink], got %q", got)
	}

	cfg.DrinkCardSelector = ""
	if got := cfg.CardSelector(); got != "[data-drink]" {
		t.Errorf("Expected any element with the id attribute, got %q", got)
	}

	cfg = DefaultConfig()
	cfg.DrinkIDAttribute = ""
	if got := cfg.CardSelector(); got != ".drink-card" {
		t.Errorf("Expected the bare card selector, got %q", got)
	}
}
