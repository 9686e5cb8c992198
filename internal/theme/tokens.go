package theme

import "github.com/garrettladley/swatch/internal/darkmode"

type Group string

const (
	GroupColor      Group = "color"
	GroupText       Group = "text"
	GroupBackground Group = "background"
	GroupBorder     Group = "border"
	GroupBranding   Group = "branding"
)

// Token is one named member of a theme.
type Token struct {
	Group Group
	Name  string
	Pair  darkmode.Pair
}

// Variable is the CSS custom property the token is published as.
func (tok Token) Variable() string {
	return "--" + string(tok.Group) + "-" + tok.Name
}

// Tokens flattens t in a stable order. Every output format is driven by it.
func (t Theme) Tokens() []Token {
	tokens := make([]Token, 0, 64)
	add := func(g Group, name string, p darkmode.Pair) {
		tokens = append(tokens, Token{Group: g, Name: name, Pair: p})
	}

	add(GroupColor, "gray", t.Gray)
	add(GroupColor, "blue", t.Blue)
	add(GroupColor, "green", t.Green)
	add(GroupColor, "purple", t.Purple)
	add(GroupColor, "red", t.Red)
	add(GroupColor, "yellow", t.Yellow)
	add(GroupColor, "orange", t.Orange)
	add(GroupColor, "teal", t.Teal)
	add(GroupColor, "cyan", t.Cyan)
	add(GroupColor, "pink", t.Pink)
	add(GroupColor, "brown", t.Brown)
	add(GroupColor, "black", t.Black)
	add(GroupColor, "off-black", t.OffBlack)
	add(GroupColor, "white", t.White)
	add(GroupColor, "off-white", t.OffWhite)
	add(GroupColor, "neutral", t.Neutral)
	add(GroupColor, "info", t.Info)

	add(GroupText, "primary", t.Text.Primary)
	add(GroupText, "secondary", t.Text.Secondary)
	add(GroupText, "tertiary", t.Text.Tertiary)
	add(GroupText, "link", t.Text.Link)
	add(GroupText, "link-hover", t.Text.LinkHover)
	add(GroupText, "button", t.Text.Button)
	add(GroupText, "error", t.Text.Error)
	add(GroupText, "success", t.Text.Success)
	add(GroupText, "warning", t.Text.Warning)
	add(GroupText, "info", t.Text.Info)
	add(GroupText, "neutral", t.Text.Neutral)
	add(GroupText, "inverted", t.Text.Inverted)
	add(GroupText, "disabled", t.Text.Disabled)

	add(GroupBackground, "primary", t.Background.Primary)
	add(GroupBackground, "secondary", t.Background.Secondary)
	add(GroupBackground, "tertiary", t.Background.Tertiary)
	add(GroupBackground, "elevated", t.Background.Elevated)
	add(GroupBackground, "grouped", t.Background.Grouped)
	add(GroupBackground, "selected", t.Background.Selected)
	add(GroupBackground, "highlighted", t.Background.Highlighted)
	add(GroupBackground, "button", t.Background.Button)
	add(GroupBackground, "button-hover", t.Background.ButtonHover)
	add(GroupBackground, "error", t.Background.Error)
	add(GroupBackground, "error-muted", t.Background.ErrorMuted)
	add(GroupBackground, "success", t.Background.Success)
	add(GroupBackground, "success-muted", t.Background.SuccessMuted)
	add(GroupBackground, "warning", t.Background.Warning)
	add(GroupBackground, "warning-muted", t.Background.WarningMuted)
	add(GroupBackground, "info", t.Background.Info)
	add(GroupBackground, "info-muted", t.Background.InfoMuted)
	add(GroupBackground, "neutral", t.Background.Neutral)

	add(GroupBorder, "primary", t.Border.Primary)
	add(GroupBorder, "secondary", t.Border.Secondary)
	add(GroupBorder, "tertiary", t.Border.Tertiary)
	add(GroupBorder, "selected", t.Border.Selected)
	add(GroupBorder, "highlighted", t.Border.Highlighted)
	add(GroupBorder, "hover", t.Border.Hover)
	add(GroupBorder, "button", t.Border.Button)
	add(GroupBorder, "error", t.Border.Error)
	add(GroupBorder, "success", t.Border.Success)
	add(GroupBorder, "warning", t.Border.Warning)
	add(GroupBorder, "info", t.Border.Info)
	add(GroupBorder, "info-muted", t.Border.InfoMuted)
	add(GroupBorder, "neutral", t.Border.Neutral)

	add(GroupBranding, "primary", t.Branding.Primary)
	add(GroupBranding, "secondary", t.Branding.Secondary)
	add(GroupBranding, "accent", t.Branding.Accent)
	add(GroupBranding, "primary-subtle", t.Branding.PrimarySubtle)
	add(GroupBranding, "secondary-subtle", t.Branding.SecondarySubtle)

	return tokens
}
