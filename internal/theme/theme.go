// Package theme defines named sets of scheme-aware colors and renders them as
// stylesheets and JSON token lists.
package theme

import (
	"github.com/samber/lo"

	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/validator"
)

type Theme struct {
	Name string

	Gray   darkmode.Pair
	Blue   darkmode.Pair
	Green  darkmode.Pair
	Purple darkmode.Pair
	Red    darkmode.Pair
	Yellow darkmode.Pair
	Orange darkmode.Pair
	Teal   darkmode.Pair
	Cyan   darkmode.Pair
	Pink   darkmode.Pair
	Brown  darkmode.Pair

	Black    darkmode.Pair
	OffBlack darkmode.Pair
	White    darkmode.Pair
	OffWhite darkmode.Pair

	// Neutral defaults to Gray and Info to Blue.
	Neutral darkmode.Pair
	Info    darkmode.Pair

	Text       Text
	Background Background
	Border     Border
	Branding   Branding
}

type Text struct {
	Primary   darkmode.Pair
	Secondary darkmode.Pair
	Tertiary  darkmode.Pair
	Link      darkmode.Pair
	LinkHover darkmode.Pair // defaults to Link
	Button    darkmode.Pair
	Error     darkmode.Pair
	Success   darkmode.Pair
	Warning   darkmode.Pair
	Info      darkmode.Pair // defaults to Link
	Neutral   darkmode.Pair // defaults to Secondary
	Inverted  darkmode.Pair
	Disabled  darkmode.Pair
}

type Background struct {
	Primary      darkmode.Pair
	Secondary    darkmode.Pair
	Tertiary     darkmode.Pair
	Elevated     darkmode.Pair
	Grouped      darkmode.Pair
	Selected     darkmode.Pair
	Highlighted  darkmode.Pair
	Button       darkmode.Pair
	ButtonHover  darkmode.Pair // defaults to Button
	Error        darkmode.Pair
	ErrorMuted   darkmode.Pair // defaults to Error
	Success      darkmode.Pair
	SuccessMuted darkmode.Pair // defaults to Success
	Warning      darkmode.Pair
	WarningMuted darkmode.Pair // defaults to Warning
	Info         darkmode.Pair // defaults to Highlighted
	InfoMuted    darkmode.Pair // defaults to Highlighted
	Neutral      darkmode.Pair // defaults to Secondary
}

type Border struct {
	Primary     darkmode.Pair
	Secondary   darkmode.Pair
	Tertiary    darkmode.Pair
	Selected    darkmode.Pair
	Highlighted darkmode.Pair
	Hover       darkmode.Pair // defaults to Highlighted
	Button      darkmode.Pair
	Error       darkmode.Pair
	Success     darkmode.Pair
	Warning     darkmode.Pair
	Info        darkmode.Pair // defaults to Highlighted
	InfoMuted   darkmode.Pair // defaults to Highlighted
	Neutral     darkmode.Pair // defaults to Secondary
}

type Branding struct {
	Primary         darkmode.Pair
	Secondary       darkmode.Pair
	Accent          darkmode.Pair
	PrimarySubtle   darkmode.Pair
	SecondarySubtle darkmode.Pair
}

// WithDefaults fills every unset optional member from its fallback. Members
// that were set explicitly are left alone.
func (t Theme) WithDefaults() Theme {
	t.Neutral = lo.CoalesceOrEmpty(t.Neutral, t.Gray)
	t.Info = lo.CoalesceOrEmpty(t.Info, t.Blue)
	t.Text = t.Text.withDefaults()
	t.Background = t.Background.withDefaults()
	t.Border = t.Border.withDefaults()
	return t
}

func (t Text) withDefaults() Text {
	t.LinkHover = lo.CoalesceOrEmpty(t.LinkHover, t.Link)
	t.Info = lo.CoalesceOrEmpty(t.Info, t.Link)
	t.Neutral = lo.CoalesceOrEmpty(t.Neutral, t.Secondary)
	return t
}

func (b Background) withDefaults() Background {
	b.ButtonHover = lo.CoalesceOrEmpty(b.ButtonHover, b.Button)
	b.ErrorMuted = lo.CoalesceOrEmpty(b.ErrorMuted, b.Error)
	b.SuccessMuted = lo.CoalesceOrEmpty(b.SuccessMuted, b.Success)
	b.WarningMuted = lo.CoalesceOrEmpty(b.WarningMuted, b.Warning)
	b.Info = lo.CoalesceOrEmpty(b.Info, b.Highlighted)
	b.InfoMuted = lo.CoalesceOrEmpty(b.InfoMuted, b.Highlighted)
	b.Neutral = lo.CoalesceOrEmpty(b.Neutral, b.Secondary)
	return b
}

func (b Border) withDefaults() Border {
	b.Hover = lo.CoalesceOrEmpty(b.Hover, b.Highlighted)
	b.Info = lo.CoalesceOrEmpty(b.Info, b.Highlighted)
	b.InfoMuted = lo.CoalesceOrEmpty(b.InfoMuted, b.Highlighted)
	b.Neutral = lo.CoalesceOrEmpty(b.Neutral, b.Secondary)
	return b
}

var _ validator.Validator = Theme{}

// Validate reports a missing name and every token left unset after
// WithDefaults.
func (t Theme) Validate() map[string]string {
	problems := make(map[string]string)
	if t.Name == "" {
		problems["name"] = "required"
	}
	for _, tok := range t.Tokens() {
		if !tok.Pair.Light().IsValid() || !tok.Pair.Dark().IsValid() {
			problems[tok.Variable()] = "unset"
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}
