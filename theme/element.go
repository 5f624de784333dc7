// Package theme keeps the whole page in step with the selected drink: the
// particle palette, the liquid profile and the accent colors of a fixed
// registry of DOM element groups.
package theme

import "github.com/simukka/brewfx/palette"

// Element is a styled DOM element.
type Element interface {
	// SetStyle sets an inline style property, custom properties included.
	// An empty value removes the property.
	SetStyle(property, value string)
	// HasClass reports whether the element carries the class.
	HasClass(name string) bool
}

// Document looks up elements by CSS selector.
type Document interface {
	// Query returns the first match, or nil.
	Query(selector string) Element
	// QueryAll returns every match.
	QueryAll(selector string) []Element
	// Root is the document element, where page-wide custom properties live.
	Root() Element
	// ThemeMode reads the current light/dark contrast mode.
	ThemeMode() palette.ThemeMode
}

// ParticleTarget receives the particle palette of the selected drink.
type ParticleTarget interface {
	SetTargetPalette(colors palette.ParticleColorSet)
}

// LiquidTarget receives the selected drink id.
type LiquidTarget interface {
	SetActiveDrink(id string)
}
