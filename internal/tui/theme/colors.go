package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#121212")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent = lipgloss.Color("#009999") // selection, teal 450
	ColorLight  = lipgloss.Color("#FAFAFA") // backdrop behind light members
	ColorDark   = lipgloss.Color("#171717") // backdrop behind dark members
)

var (
	ColorBgDark  = lipgloss.Color("#121212")
	ColorBgLight = lipgloss.Color("#2C2C2E")
)
