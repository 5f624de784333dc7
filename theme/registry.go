package theme

import (
	"strconv"

	"github.com/simukka/brewfx/palette"
)

// Accent is the resolved styling of one selection.
type Accent struct {
	ID      string
	Default bool
	// Color is the contrast-dependent accent, empty for the default
	// selection so inline overrides fall back to the stylesheet.
	Color string
	Ramp  [5]string
}

// Group is one entry of the themed element registry.
type Group struct {
	Name      string
	Selectors []string
	// All applies to every match instead of the first.
	All   bool
	Apply func(el Element, a Accent)
}

// SectionAccentFallback is the stylesheet value of --drink-accent.
const SectionAccentFallback = "var(--dusty-rose)"

// Registry is the fixed set of element groups that follow the selection.
var Registry = []Group{
	{
		Name:      "logos",
		Selectors: []string{".logo"},
		All:       true,
		Apply:     setColor,
	},
	{
		Name: "titles",
		Selectors: []string{
			"#menu .section-title",
			"#projects .section-title",
			"#team .section-title",
			".drink-detail-name",
		},
		Apply: setColor,
	},
	{
		Name:      "detail-back",
		Selectors: []string{".drink-detail-back"},
		Apply: func(el Element, a Accent) {
			el.SetStyle("--btn-color", a.Color)
		},
	},
	{
		Name:      "detail-illustration",
		Selectors: []string{".drink-detail-illustration"},
		Apply:     setBorder,
	},
	{
		Name:      "sections",
		Selectors: []string{"#menu", "#projects", "#team"},
		Apply: func(el Element, a Accent) {
			v := a.Color
			if v == "" {
				v = SectionAccentFallback
			}
			el.SetStyle("--drink-accent", v)
		},
	},
	{
		Name:      "cards",
		Selectors: []string{".drink-card", ".project-card", ".team-member"},
		All:       true,
		Apply:     setBorder,
	},
	{
		Name:      "theme-toggle",
		Selectors: []string{".theme-toggle"},
		Apply:     setBorder,
	},
	{
		Name:      "nav-links",
		Selectors: []string{".nav-link"},
		All:       true,
		Apply: func(el Element, a Accent) {
			if el.HasClass("active") {
				el.SetStyle("color", a.Color)
			} else {
				el.SetStyle("color", "")
			}
		},
	},
	{
		Name:      "mobile-navbar",
		Selectors: []string{".mobile-navbar"},
		Apply: func(el Element, a Accent) {
			if a.Default {
				el.SetStyle("border-image", "")
				el.SetStyle("border-color", "")
				return
			}
			el.SetStyle("border-image", palette.GradientBorder(a.Ramp))
		},
	},
}

func setColor(el Element, a Accent) {
	el.SetStyle("color", a.Color)
}

func setBorder(el Element, a Accent) {
	el.SetStyle("border-color", a.Color)
}

// NavColorProperty names the root custom property of ramp stop i (0-based).
func NavColorProperty(i int) string {
	return "--drink-nav-color-" + strconv.Itoa(i+1)
}

// elements resolves the group against doc, skipping selectors with no match.
func (g Group) elements(doc Document) []Element {
	var out []Element
	for _, sel := range g.Selectors {
		if g.All {
			for _, el := range doc.QueryAll(sel) {
				if el != nil {
					out = append(out, el)
				}
			}
			continue
		}
		if el := doc.Query(sel); el != nil {
			out = append(out, el)
		}
	}
	return out
}
