package particles

// Style holds the tuning constants of the particle field.
var Style = struct {
	// Per-frame easing
	ColorConvergence float64
	ScrollSmoothing  float64

	// Parallax
	ParallaxStrength float64
	DriftDepth       float64
	SteamDepth       float64
	DustDepth        float64
	GroundsDepth     float64

	// Edge wrap margins in pixels
	DriftMargin     float64
	DustMargin      float64
	GroundsMargin   float64
	SteamTopMargin  float64
	SteamSpawnBelow float64

	// Rendering
	GlowFactor      float64
	DiamondScale    float64
	DriftWobbleSway float64
	SteamPeak       float64
	ShadowReset     string

	// Stats overlay
	PanelBackground string
	PanelBorder     string
	PanelTitle      string
	PanelLabel      string
	PanelValue      string
	PanelTitleFont  string
	PanelFont       string
}{
	// Per-frame easing
	ColorConvergence: 0.02,
	ScrollSmoothing:  0.1,

	// Parallax - larger particles read as closer
	ParallaxStrength: 0.15,
	DriftDepth:       6,
	SteamDepth:       8,
	DustDepth:        4,
	GroundsDepth:     3,

	// Edge wrap margins
	DriftMargin:     10,
	DustMargin:      20,
	GroundsMargin:   20,
	SteamTopMargin:  50,
	SteamSpawnBelow: 50,

	// Rendering
	GlowFactor:      2,
	DiamondScale:    1.5,
	DriftWobbleSway: 0.2,
	SteamPeak:       0.15,
	ShadowReset:     "rgba(0, 0, 0, 0)",

	// Stats overlay
	PanelBackground: "rgba(0, 0, 0, 0.75)",
	PanelBorder:     "#c08497",
	PanelTitle:      "#e8a317",
	PanelLabel:      "#aaaaaa",
	PanelValue:      "#ffffff",
	PanelTitleFont:  "bold 14px monospace",
	PanelFont:       "12px monospace",
}
