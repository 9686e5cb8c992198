package palette

// lightShades are the single-scheme shades, darkest first. Index i holds step
// 100+50*i.
var lightShades = map[Family][stepCount]string{
	Gray: {
		"1a1a1a", "2a2a2a", "3a3a3a", "4a4a4a", "5a5a5a", "666666",
		"707070", "808080", "888888", "8f8f8f", "999999", "aaaaaa",
		"bbbbbb", "c5c5c5", "d0d0d0", "e0e0e0", "f5f5f5",
	},
	Blue: {
		"001a33", "001f3f", "003366", "004488", "0055aa", "0066cc",
		"0077ee", "0088ff", "3399ff", "4d9cff", "66aaff", "99bbff",
		"b3ccff", "b3d9ff", "cce5ff", "e6f2ff", "f0f8ff",
	},
	Green: {
		"002600", "003300", "004400", "005500", "006600", "007700",
		"009900", "00b300", "33cc33", "4ddb4d", "66d966", "99e699",
		"b3f0b3", "bdeabf", "ccf5cc", "e6ffe6", "f0fff0",
	},
	Purple: {
		"1a0026", "2a0033", "3b0044", "4c0055", "5d0066", "6e0088",
		"7f0099", "8f00b3", "a300cc", "a866d6", "b366e0", "cc80e6",
		"d9b3f0", "e0b3f0", "e6ccf5", "f2e6ff", "f9f0ff",
	},
	Red: {
		"260000", "330000", "440000", "550000", "660000", "880000",
		"990000", "b30000", "cc3333", "dd6666", "e06666", "e69999",
		"f0b3b3", "f5b3b3", "f5cccc", "ffe6e6", "fff0f0",
	},
	Yellow: {
		"262600", "333300", "444400", "555500", "666600", "808000",
		"999900", "b3b300", "cccc33", "dedd66", "d6d666", "e0e099",
		"ebebcc", "f0eebf", "f5f5e0", "ffffe6", "fffff0",
	},
	Orange: {
		"261300", "331a00", "442200", "553300", "663300", "884400",
		"994d00", "b35900", "cc6600", "e68a4d", "e67333", "f29466",
		"f5a366", "f7c299", "f9d1cc", "fde8d9", "fff4e6",
	},
	Teal: {
		"001a1a", "003333", "004444", "005555", "006666", "007777",
		"008888", "009999", "33aaaa", "4dbfbf", "66bfbf", "99cccc",
		"b3d6d6", "b3e0e0", "cce5e5", "e6f2f2", "f0f8f8",
	},
	Pink: {
		"260013", "33001a", "440022", "55002b", "660033", "88003d",
		"990047", "b30052", "cc3366", "e66699", "e06699", "e699b3",
		"f0b3cc", "f0aacc", "f5cce0", "f9e6f2", "fceff5",
	},
	Brown: {
		"261300", "331a00", "442200", "553300", "663300", "884400",
		"994d00", "b35900", "cc6600", "e6884d", "e67333", "f0b366",
		"f5cc99", "f5d1b3", "f7e0cc", "fdeee6", "fef5f0",
	},
}

// darkShades are the curated dark-scheme counterparts of lightShades.
var darkShades = map[Family][stepCount]string{
	Gray: {
		"f7f7f7", "f0f0f0", "e0e0e0", "d0d0d0", "c0c0c0", "a0a0a0",
		"909090", "808080", "707070", "606060", "606060", "505050",
		"404040", "303030", "303030", "202020", "101010",
	},
	Blue: {
		"e6f3ff", "ccddee", "bbccdd", "99bbcc", "7799bb", "5588aa",
		"336699", "115588", "004477", "004466", "003366", "002255",
		"001144", "002244", "001133", "001122", "001011",
	},
	Green: {
		"e6ffe6", "ccffcc", "bbeebb", "99dd99", "77cc77", "55bb55",
		"33aa33", "229922", "008800", "006600", "007700", "006600",
		"005500", "004400", "004400", "003300", "002200",
	},
	Purple: {
		"f0e6ff", "e6ccf5", "d9b3ea", "cc80e6", "b366d6", "a300cc",
		"8f00b3", "7f0099", "6e0088", "5d0077", "5d0066", "4c0055",
		"3b0044", "3b0033", "2a0033", "200022", "110011",
	},
	Red: {
		"ffe6e6", "ffcccc", "ffb3b3", "ff9999", "ff8080", "ff6666",
		"ff4d4d", "ff3333", "ff1a1a", "cc0000", "ff0000", "dd0000",
		"bb0000", "aa0000", "990000", "770000", "550000",
	},
	Yellow: {
		"fffff2", "ffffcc", "ffffb3", "ffff99", "ffff80", "ffff66",
		"ffff4d", "ffff33", "ffff1a", "d6d600", "e6e600", "cccc00",
		"b3b300", "b3b300", "999900", "808000", "666600",
	},
	Orange: {
		"fff4e6", "ffe6cc", "ffd9b3", "ffcc99", "ffbf80", "ffb366",
		"ffa64d", "ff9933", "ff8c1a", "a64d00", "ff8000", "cc6600",
		"b35900", "773300", "884400", "663300", "553300",
	},
	Teal: {
		"e6ffff", "ccffeb", "bbffe6", "aaffdd", "88ffd1", "66ffc4",
		"33ffb8", "00ffaa", "00e699", "007777", "00cc88", "00b377",
		"009966", "005544", "008855", "007744", "006633",
	},
	Pink: {
		"ffe6f0", "ffe6f2", "ffccde", "ff99cc", "ff66b3", "ff4da6",
		"ff3399", "ff1a80", "ff0066", "cc0044", "e6005c", "cc0052",
		"b30047", "aa0044", "99003d", "770033", "550029",
	},
	Brown: {
		"f7e6d9", "ffebcc", "ffddaa", "ffcc88", "ffbb66", "ffaa44",
		"ff9933", "ff8822", "ff7700", "b34d00", "e66a00", "cc5e00",
		"b35200", "aa5500", "994700", "773b00", "553000",
	},
}
