package preview

import (
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/garrettladley/swatch/internal/theme"
	"github.com/garrettladley/swatch/internal/tui/components/swatch"
	tuitheme "github.com/garrettladley/swatch/internal/tui/theme"
)

const (
	swatchWidth = 14
	columnGap   = 2
)

// Palette lays the tokens out as a grid of swatches, one titled block per
// group, wrapping at width columns.
func Palette(tokens []theme.Token, width int) string {
	perRow := max((width+columnGap)/(2*swatchWidth+columnGap), 1)
	gap := lipgloss.NewStyle().Width(columnGap).Render("")
	title := lipgloss.NewStyle().Foreground(tuitheme.ColorAccent).Bold(true)

	groups := lo.GroupBy(tokens, func(tok theme.Token) theme.Group { return tok.Group })
	order := lo.Uniq(lo.Map(tokens, func(tok theme.Token, _ int) theme.Group { return tok.Group }))

	blocks := make([]string, 0, len(order))
	for _, g := range order {
		rows := lo.Map(lo.Chunk(groups[g], perRow), func(chunk []theme.Token, _ int) string {
			cells := make([]string, 0, 2*len(chunk))
			for i, tok := range chunk {
				if i > 0 {
					cells = append(cells, gap)
				}
				cells = append(cells, swatch.New(tok.Name, tok.Pair, swatch.WithWidth(swatchWidth)).Render())
			}
			return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		})
		blocks = append(blocks, title.Render(string(g)))
		blocks = append(blocks, rows...)
		blocks = append(blocks, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
