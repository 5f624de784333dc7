package palette

// Drink identifiers with dedicated tables. Catalog ids outside this list
// resolve to DefaultID.
const (
	DefaultID = "default"
	NoneID    = "none"

	PourOver           = "pour-over"
	Cappuccino         = "cappuccino"
	Latte              = "latte"
	Mocha              = "mocha"
	HotChocolate       = "hot-chocolate"
	MatchaLatte        = "matcha-latte"
	MoroccanMint       = "moroccan-mint"
	SomethingDifferent = "something-different"
)

// drinkOrder is the menu order of the themed drinks.
var drinkOrder = []string{
	PourOver,
	Cappuccino,
	Latte,
	Mocha,
	HotChocolate,
	MatchaLatte,
	MoroccanMint,
	SomethingDifferent,
}

// particleColors are 0-255 spice palettes.
var particleColors = map[string]ParticleColorSet{
	DefaultID: {
		{232, 163, 23},  // saffron
		{114, 47, 55},   // paprika
		{210, 105, 30},  // cinnamon
		{192, 132, 151}, // dusty rose
		{139, 115, 85},  // olive
		{204, 85, 0},    // burnt orange
	},
	PourOver: {
		{194, 140, 89},
		{217, 179, 128},
		{166, 113, 67},
		{232, 200, 150},
		{180, 130, 80},
	},
	Cappuccino: {
		{89, 51, 31},
		{242, 235, 224},
		{139, 90, 60},
		{200, 180, 160},
		{70, 40, 25},
	},
	Latte: {
		{140, 97, 64},
		{230, 217, 199},
		{180, 145, 110},
		{210, 190, 165},
		{160, 115, 80},
	},
	Mocha: {
		{71, 38, 26},
		{115, 64, 38},
		{89, 51, 31},
		{140, 90, 60},
		{50, 30, 20},
	},
	HotChocolate: {
		{64, 31, 20},
		{242, 230, 217},
		{100, 55, 35},
		{220, 200, 180},
		{80, 45, 30},
	},
	MatchaLatte: {
		{115, 140, 77},
		{230, 235, 217},
		{140, 160, 100},
		{90, 115, 60},
		{200, 210, 180},
	},
	MoroccanMint: {
		{89, 128, 89},
		{204, 217, 179},
		{115, 150, 110},
		{70, 100, 70},
		{180, 200, 160},
	},
	SomethingDifferent: {
		{192, 115, 140},
		{230, 191, 153},
		{170, 100, 120},
		{210, 160, 140},
		{150, 90, 110},
	},
}

// liquidProfiles use 0-1 colors. DefaultID shares the empty-cup profile.
var liquidProfiles = map[string]LiquidProfile{
	NoneID: {
		BaseColor:      RGB{0.98, 0.97, 0.95},
		SecondaryColor: RGB{0.95, 0.94, 0.92},
		Viscosity:      0.5,
		FlowSpeed:      0.5,
	},
	PourOver: {
		BaseColor:      RGB{0.76, 0.55, 0.35},
		SecondaryColor: RGB{0.85, 0.70, 0.50},
		Viscosity:      0.3,
		FlowSpeed:      1.2,
		FillLevel:      0.85,
		FoamHeight:     0.02,
		HasSwirl:       true,
	},
	Cappuccino: {
		BaseColor:      RGB{0.35, 0.20, 0.12},
		SecondaryColor: RGB{0.95, 0.92, 0.88},
		Viscosity:      0.6,
		FlowSpeed:      0.8,
		FillLevel:      0.9,
		FoamHeight:     0.15,
		HasSwirl:       true,
	},
	Latte: {
		BaseColor:      RGB{0.55, 0.38, 0.25},
		SecondaryColor: RGB{0.90, 0.85, 0.78},
		Viscosity:      0.5,
		FlowSpeed:      0.9,
		FillLevel:      0.88,
		FoamHeight:     0.08,
		HasSwirl:       true,
	},
	Mocha: {
		BaseColor:      RGB{0.28, 0.15, 0.10},
		SecondaryColor: RGB{0.45, 0.25, 0.15},
		Viscosity:      0.7,
		FlowSpeed:      0.6,
		FillLevel:      0.85,
		FoamHeight:     0.06,
		HasSwirl:       true,
	},
	HotChocolate: {
		BaseColor:      RGB{0.25, 0.12, 0.08},
		SecondaryColor: RGB{0.95, 0.90, 0.85},
		Viscosity:      0.9,
		FlowSpeed:      0.4,
		FillLevel:      0.92,
		FoamHeight:     0.12,
	},
	MatchaLatte: {
		BaseColor:      RGB{0.45, 0.55, 0.30},
		SecondaryColor: RGB{0.90, 0.92, 0.85},
		Viscosity:      0.5,
		FlowSpeed:      0.85,
		FillLevel:      0.87,
		FoamHeight:     0.1,
		HasSwirl:       true,
	},
	MoroccanMint: {
		BaseColor:      RGB{0.35, 0.50, 0.35},
		SecondaryColor: RGB{0.80, 0.85, 0.70},
		Viscosity:      0.25,
		FlowSpeed:      1.3,
		FillLevel:      0.8,
		HasSwirl:       true,
	},
	SomethingDifferent: {
		BaseColor:      RGB{0.75, 0.45, 0.55},
		SecondaryColor: RGB{0.90, 0.75, 0.60},
		Viscosity:      0.5,
		FlowSpeed:      1.0,
		FillLevel:      0.86,
		FoamHeight:     0.05,
		HasSwirl:       true,
	},
}

// accents pair a light-background and dark-background logo color with
// the five-stop mobile navigation ramp.
var accents = map[string]Accent{
	DefaultID: {
		Light: "#2d2926",
		Dark:  "#d4cdc5",
		Ramp:  [5]string{"#6B5740", "#D2691E", "#C08497", "#CD7F32", "#E8A317"},
	},
	PourOver: {
		Light: "#8a6035",
		Dark:  "#d4a870",
		Ramp:  [5]string{"#8a6035", "#c28c50", "#d4a870", "#b8860b", "#daa520"},
	},
	Cappuccino: {
		Light: "#4a2a1a",
		Dark:  "#c4a080",
		Ramp:  [5]string{"#4a2a1a", "#6b4423", "#8b5a2b", "#a0522d", "#cd853f"},
	},
	Latte: {
		Light: "#6b4d35",
		Dark:  "#c9b090",
		Ramp:  [5]string{"#6b4d35", "#8b7355", "#a08060", "#c4a484", "#d2b48c"},
	},
	Mocha: {
		Light: "#3d2015",
		Dark:  "#b08060",
		Ramp:  [5]string{"#3d2015", "#5c3317", "#6b4423", "#8b4513", "#a0522d"},
	},
	HotChocolate: {
		Light: "#351a10",
		Dark:  "#c49070",
		Ramp:  [5]string{"#351a10", "#4a2c2a", "#6b4423", "#8b4513", "#cd853f"},
	},
	MatchaLatte: {
		Light: "#4a5c30",
		Dark:  "#9ab070",
		Ramp:  [5]string{"#4a5c30", "#6b8e23", "#7cba3d", "#8fbc8f", "#9acd32"},
	},
	MoroccanMint: {
		Light: "#3d5a3d",
		Dark:  "#80b080",
		Ramp:  [5]string{"#3d5a3d", "#4a7c59", "#5f9e6e", "#71bc78", "#90ee90"},
	},
	SomethingDifferent: {
		Light: "#8a4a5a",
		Dark:  "#d4a0b0",
		Ramp:  [5]string{"#8a4a5a", "#b06070", "#c08497", "#d4a0b0", "#e6b8c2"},
	},
}
