package models

// ThemePalette names one of the fixed color palettes.
type ThemePalette string

const (
	PaletteBlueCyanTeal  ThemePalette = "blue-cyan-teal"
	PalettePinkRedOrange ThemePalette = "pink-red-orange"
	PaletteTealCyanBlue  ThemePalette = "teal-cyan-blue"
	PaletteDeepBlue      ThemePalette = "deep-blue"
)

// DefaultThemePalette is used when no palette has been saved or the saved
// value is not recognized.
const DefaultThemePalette = PaletteBlueCyanTeal

var ThemePalettes = []ThemePalette{
	PaletteBlueCyanTeal,
	PalettePinkRedOrange,
	PaletteTealCyanBlue,
	PaletteDeepBlue,
}

// ParseThemePalette validates a stored palette value, falling back to the
// default for anything unknown.
func ParseThemePalette(s string) ThemePalette {
	for _, p := range ThemePalettes {
		if s == string(p) {
			return p
		}
	}
	return DefaultThemePalette
}

// Next cycles to the following palette, wrapping at the end.
func (p ThemePalette) Next() ThemePalette {
	for i, palette := range ThemePalettes {
		if palette == p {
			return ThemePalettes[(i+1)%len(ThemePalettes)]
		}
	}
	return DefaultThemePalette
}

// Name returns the display name for the palette.
func (p ThemePalette) Name() string {
	switch p {
	case PaletteBlueCyanTeal:
		return "Blue / Cyan / Teal"
	case PalettePinkRedOrange:
		return "Pink / Red / Orange"
	case PaletteTealCyanBlue:
		return "Teal / Cyan / Blue"
	case PaletteDeepBlue:
		return "Deep Blue"
	default:
		return string(p)
	}
}
