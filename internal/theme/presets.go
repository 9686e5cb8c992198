package theme

import (
	"github.com/garrettladley/swatch/internal/color"
	"github.com/garrettladley/swatch/internal/darkmode"
	"github.com/garrettladley/swatch/internal/palette"
)

func hex(light, dark string) darkmode.Pair {
	return darkmode.Adaptive(color.Hex(light), color.Hex(dark))
}

func translucent(light, dark string, alpha float64) darkmode.Pair {
	return hex(light, dark).Opacity(alpha)
}

func shade(f palette.Family) darkmode.Pair {
	return palette.MustPair(f, palette.DefaultStep)
}

// Default is the stock theme built from the palette's middle shades.
func Default() Theme {
	return Theme{
		Name:     "default",
		Gray:     shade(palette.Gray),
		Blue:     shade(palette.Blue),
		Green:    shade(palette.Green),
		Purple:   shade(palette.Purple),
		Red:      shade(palette.Red),
		Yellow:   shade(palette.Yellow),
		Orange:   shade(palette.Orange),
		Teal:     shade(palette.Teal),
		Cyan:     shade(palette.Cyan),
		Pink:     shade(palette.Pink),
		Brown:    shade(palette.Brown),
		Black:    darkmode.Single(color.Hex("121212")),
		OffBlack: darkmode.Single(color.Hex("171717")),
		White:    darkmode.Single(color.Hex("fff")),
		OffWhite: darkmode.Single(color.Hex("fafafa")),
		Text: Text{
			Primary:   hex("000000", "FFFFFF"),
			Secondary: translucent("3C3C43", "EBEBF5", 0.6),
			Tertiary:  translucent("3C3C43", "EBEBF5", 0.3),
			Link:      hex("007AFF", "0A84FF"),
			Button:    hex("000000", "FFFFFF"),
			Error:     hex("FF3B30", "FF453A"),
			Success:   hex("34C759", "30D158"),
			Warning:   hex("FF9500", "FF9F0A"),
			Inverted:  hex("FFFFFF", "000000"),
			Disabled:  translucent("3C3C43", "EBEBF5", 0.2),
		},
		Background: Background{
			Primary:     hex("FFFFFF", "121212"),
			Secondary:   hex("F2F2F7", "1C1C1E"),
			Tertiary:    hex("EBEBEB", "2C2C2E"),
			Elevated:    hex("FFFFFF", "1C1C1E"),
			Grouped:     hex("F2F2F7", "1C1C1E"),
			Selected:    hex("DCDCDC", "3A3A3C"),
			Highlighted: translucent("E5E5EA", "3A3A3C", 0.6),
			Button:      darkmode.Adaptive(color.FromRGB(245, 246, 248), color.FromRGB(25, 25, 27)),
			Error:       hex("fee2e2", "450a0a"),
			Success:     hex("dcfce7", "14532d"),
			Warning:     hex("fef3c7", "451a03"),
		},
		Border: Border{
			Primary:     hex("FFFFFF", "121212"),
			Secondary:   hex("F2F2F7", "1C1C1E"),
			Tertiary:    hex("EBEBEB", "2C2C2E"),
			Selected:    hex("DCDCDC", "3A3A3C"),
			Highlighted: translucent("E5E5EA", "3A3A3C", 0.6),
			Button:      darkmode.Adaptive(color.FromRGB(245, 246, 248), color.FromRGB(25, 25, 27)),
			Error:       hex("fee2e2", "450a0a"),
			Success:     hex("dcfce7", "14532d"),
			Warning:     hex("fef3c7", "451a03"),
		},
		Branding: Branding{
			Primary:         hex("007AFF", "0A84FF"),
			Secondary:       hex("5856D6", "5E5CE6"),
			Accent:          hex("FF9500", "FF9F0A"),
			PrimarySubtle:   translucent("007AFF", "0A84FF", 0.2),
			SecondarySubtle: translucent("5856D6", "5E5CE6", 0.2),
		},
	}.WithDefaults()
}

// Apple follows the system colors of Apple platforms.
func Apple() Theme {
	return Theme{
		Name:     "apple",
		Gray:     hex("8e8e93", "8e8e93"),
		Blue:     hex("007aff", "0a84ff"),
		Green:    hex("34c759", "30d158"),
		Purple:   hex("5856d6", "5e5ce6"),
		Red:      hex("ff3b30", "ff453a"),
		Yellow:   hex("ffcc00", "ffd60a"),
		Orange:   hex("ff9500", "ff9f0a"),
		Teal:     hex("5ac8fa", "64d2ff"),
		Cyan:     hex("5ac8fa", "64d2ff"),
		Pink:     hex("ff2d55", "ff375f"),
		Brown:    hex("a2845e", "ac8e68"),
		Black:    hex("000000", "000000"),
		OffBlack: hex("1c1c1e", "1c1c1e"),
		White:    hex("ffffff", "ffffff"),
		OffWhite: hex("f2f2f7", "f2f2f7"),
		Text: Text{
			Primary:   hex("000000", "ffffff"),
			Secondary: translucent("3c3c43", "ebebf5", 0.6),
			Tertiary:  translucent("3c3c43", "ebebf5", 0.3),
			Link:      hex("007aff", "0a84ff"),
			Button:    hex("007aff", "0a84ff"),
			Error:     hex("ff3b30", "ff453a"),
			Success:   hex("34c759", "30d158"),
			Warning:   hex("ff9500", "ff9f0a"),
			Inverted:  hex("ffffff", "000000"),
			Disabled:  translucent("3c3c43", "ebebf5", 0.2),
		},
		Background: Background{
			Primary:     hex("ffffff", "000000"),
			Secondary:   hex("f2f2f7", "1c1c1e"),
			Tertiary:    hex("ffffff", "2c2c2e"),
			Elevated:    hex("ffffff", "1c1c1e"),
			Grouped:     hex("f2f2f7", "000000"),
			Selected:    hex("d1d1d6", "3a3a3c"),
			Highlighted: translucent("007aff", "0a84ff", 0.15),
			Button:      hex("007aff", "0a84ff"),
			Error:       hex("ffebe9", "3a0f0c"),
			Success:     hex("e6f4ea", "0d2f1f"),
			Warning:     hex("fff4e5", "3a2003"),
		},
		Border: Border{
			Primary:     hex("ffffff", "000000"),
			Secondary:   hex("f2f2f7", "1c1c1e"),
			Tertiary:    hex("ffffff", "2c2c2e"),
			Selected:    hex("d1d1d6", "3a3a3c"),
			Highlighted: translucent("007aff", "0a84ff", 0.15),
			Button:      hex("007aff", "0a84ff"),
			Error:       hex("ffebe9", "3a0f0c"),
			Success:     hex("e6f4ea", "0d2f1f"),
			Warning:     hex("fff4e5", "3a2003"),
		},
		Branding: Branding{
			Primary:         hex("007aff", "0a84ff"),
			Secondary:       hex("5856d6", "5e5ce6"),
			Accent:          hex("ff9500", "ff9f0a"),
			PrimarySubtle:   translucent("007aff", "0a84ff", 0.15),
			SecondarySubtle: translucent("5856d6", "5e5ce6", 0.15),
		},
	}.WithDefaults()
}

// GitHub follows the Primer color system.
func GitHub() Theme {
	return Theme{
		Name:     "github",
		Gray:     hex("656d76", "7d8590"),
		Blue:     hex("0969da", "2f81f7"),
		Green:    hex("1a7f37", "3fb950"),
		Purple:   hex("8250df", "a371f7"),
		Red:      hex("d1242f", "f85149"),
		Yellow:   hex("9a6700", "d29922"),
		Orange:   hex("fb8500", "f0883e"),
		Teal:     hex("1b7c83", "39c5cf"),
		Cyan:     hex("0969da", "58a6ff"),
		Pink:     hex("bf3989", "f778ba"),
		Brown:    hex("953800", "bd561d"),
		Black:    hex("1f2328", "010409"),
		OffBlack: hex("24292f", "0d1117"),
		White:    hex("ffffff", "ffffff"),
		OffWhite: hex("f6f8fa", "f0f6fc"),
		Text: Text{
			Primary:   hex("1f2328", "e6edf3"),
			Secondary: hex("656d76", "7d8590"),
			Tertiary:  hex("959da5", "484f58"),
			Link:      hex("0969da", "58a6ff"),
			Button:    hex("ffffff", "ffffff"),
			Error:     hex("d1242f", "f85149"),
			Success:   hex("1a7f37", "3fb950"),
			Warning:   hex("9a6700", "d29922"),
			Inverted:  hex("ffffff", "010409"),
			Disabled:  hex("8c959f", "484f58"),
		},
		Background: Background{
			Primary:     hex("ffffff", "0d1117"),
			Secondary:   hex("f6f8fa", "161b22"),
			Tertiary:    hex("ffffff", "21262d"),
			Elevated:    hex("ffffff", "161b22"),
			Grouped:     hex("f6f8fa", "010409"),
			Selected:    darkmode.Adaptive(color.Hex("0969da").Opacity(0.1), color.Hex("388bfd").Opacity(0.2)),
			Highlighted: darkmode.Adaptive(color.Hex("0969da").Opacity(0.15), color.Hex("1158c7").Opacity(0.4)),
			Button:      hex("2ea043", "238636"),
			Error:       hex("ffebe9", "85141c"),
			Success:     hex("dafbe1", "0f2816"),
			Warning:     hex("fff8c5", "3a2200"),
		},
		Border: Border{
			Primary:     hex("ffffff", "0d1117"),
			Secondary:   hex("f6f8fa", "161b22"),
			Tertiary:    hex("ffffff", "21262d"),
			Selected:    darkmode.Adaptive(color.Hex("0969da").Opacity(0.1), color.Hex("388bfd").Opacity(0.2)),
			Highlighted: darkmode.Adaptive(color.Hex("0969da").Opacity(0.15), color.Hex("1158c7").Opacity(0.4)),
			Button:      hex("2ea043", "238636"),
			Error:       hex("ffebe9", "85141c"),
			Success:     hex("dafbe1", "0f2816"),
			Warning:     hex("fff8c5", "3a2200"),
		},
		Branding: Branding{
			Primary:         hex("0969da", "58a6ff"),
			Secondary:       hex("2ea043", "3fb950"),
			Accent:          hex("fb8500", "f0883e"),
			PrimarySubtle:   hex("ddf4ff", "0c2d6b"),
			SecondarySubtle: hex("dafbe1", "0f2816"),
		},
	}.WithDefaults()
}
