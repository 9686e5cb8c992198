package color

import "slices"

// Named is a CSS named color keyword.
type Named string

const (
	Black         Named = "black"
	Silver        Named = "silver"
	Gray          Named = "gray"
	White         Named = "white"
	Maroon        Named = "maroon"
	Red           Named = "red"
	Purple        Named = "purple"
	Fuchsia       Named = "fuchsia"
	Green         Named = "green"
	Lime          Named = "lime"
	Olive         Named = "olive"
	Yellow        Named = "yellow"
	Navy          Named = "navy"
	Blue          Named = "blue"
	Teal          Named = "teal"
	Aqua          Named = "aqua"
	Cyan          Named = "cyan"
	Magenta       Named = "magenta"
	Orange        Named = "orange"
	AliceBlue     Named = "aliceblue"
	Beige         Named = "beige"
	Brown         Named = "brown"
	Coral         Named = "coral"
	Crimson       Named = "crimson"
	DarkGray      Named = "darkgray"
	Gold          Named = "gold"
	Indigo        Named = "indigo"
	Ivory         Named = "ivory"
	Khaki         Named = "khaki"
	Lavender      Named = "lavender"
	LightGray     Named = "lightgray"
	Pink          Named = "pink"
	RebeccaPurple Named = "rebeccapurple"
	Salmon        Named = "salmon"
	SlateGray     Named = "slategray"
	Tomato        Named = "tomato"
	Turquoise     Named = "turquoise"
	Violet        Named = "violet"
	WhiteSmoke    Named = "whitesmoke"
	Transparent   Named = "transparent"
	CurrentColor  Named = "currentcolor"
)

var knownNames = []Named{
	Black, Silver, Gray, White, Maroon, Red, Purple, Fuchsia, Green, Lime,
	Olive, Yellow, Navy, Blue, Teal, Aqua, Cyan, Magenta, Orange, AliceBlue,
	Beige, Brown, Coral, Crimson, DarkGray, Gold, Indigo, Ivory, Khaki,
	Lavender, LightGray, Pink, RebeccaPurple, Salmon, SlateGray, Tomato,
	Turquoise, Violet, WhiteSmoke, Transparent, CurrentColor,
}

// namedRGB covers the CSS basic colors plus cyan and magenta. Names outside
// this table have no RGB equivalent.
var namedRGB = map[Named]RGB{
	Black:   {0, 0, 0},
	Silver:  {192, 192, 192},
	Gray:    {128, 128, 128},
	White:   {255, 255, 255},
	Maroon:  {128, 0, 0},
	Red:     {255, 0, 0},
	Purple:  {128, 0, 128},
	Fuchsia: {255, 0, 255},
	Green:   {0, 128, 0},
	Lime:    {0, 255, 0},
	Olive:   {128, 128, 0},
	Yellow:  {255, 255, 0},
	Navy:    {0, 0, 128},
	Blue:    {0, 0, 255},
	Teal:    {0, 128, 128},
	Aqua:    {0, 255, 255},
	Cyan:    {0, 255, 255},
	Magenta: {255, 0, 255},
}

func (n Named) String() string { return string(n) }

// IsKnown reports whether n is one of the named color keywords this package
// enumerates.
func (n Named) IsKnown() bool {
	return slices.Contains(knownNames, n)
}

// NamedColors lists every enumerated named color keyword.
func NamedColors() []Named {
	return slices.Clone(knownNames)
}

// Global is a CSS-wide keyword. It is opaque to all color math.
type Global string

const (
	Inherit     Global = "inherit"
	Initial     Global = "initial"
	Unset       Global = "unset"
	Revert      Global = "revert"
	RevertLayer Global = "revert-layer"
)

var knownGlobals = []Global{Inherit, Initial, Unset, Revert, RevertLayer}

func (g Global) String() string { return string(g) }

func (g Global) IsKnown() bool {
	return slices.Contains(knownGlobals, g)
}
