package css

import "github.com/samber/lo"

// Name is a CSS property that takes a color.
type Name string

const (
	Color                  Name = "color"
	BackgroundColor        Name = "background-color"
	Background             Name = "background"
	AccentColor            Name = "accent-color"
	BorderColor            Name = "border-color"
	BorderTopColor         Name = "border-top-color"
	BorderRightColor       Name = "border-right-color"
	BorderBottomColor      Name = "border-bottom-color"
	BorderLeftColor        Name = "border-left-color"
	BorderBlockColor       Name = "border-block-color"
	BorderBlockStartColor  Name = "border-block-start-color"
	BorderBlockEndColor    Name = "border-block-end-color"
	BorderInlineColor      Name = "border-inline-color"
	BorderInlineStartColor Name = "border-inline-start-color"
	BorderInlineEndColor   Name = "border-inline-end-color"
	CaretColor             Name = "caret-color"
	ColumnRuleColor        Name = "column-rule-color"
	Fill                   Name = "fill"
	FloodColor             Name = "flood-color"
	LightingColor          Name = "lighting-color"
	OutlineColor           Name = "outline-color"
	StopColor              Name = "stop-color"
	Stroke                 Name = "stroke"
	TextDecorationColor    Name = "text-decoration-color"
	TextEmphasisColor      Name = "text-emphasis-color"
)

var names = []Name{
	Color, BackgroundColor, Background, AccentColor, BorderColor,
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor,
	BorderBlockColor, BorderBlockStartColor, BorderBlockEndColor,
	BorderInlineColor, BorderInlineStartColor, BorderInlineEndColor,
	CaretColor, ColumnRuleColor, Fill, FloodColor, LightingColor,
	OutlineColor, StopColor, Stroke, TextDecorationColor, TextEmphasisColor,
}

func (n Name) String() string { return string(n) }

// LookupName resolves a property name, reporting false for names that do not
// take a color.
func LookupName(s string) (Name, bool) {
	return lo.Find(names, func(n Name) bool { return string(n) == s })
}
