// Package appearance maps the dark mode preference onto a fyne theme.
package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameEarnings is used for the earnings figure.
const ColorNameEarnings fyne.ThemeColorName = "salarywatchEarnings"

var (
	earningsDark  = color.NRGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	earningsLight = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
)

type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// For returns the default theme pinned to the dark or light variant,
// ignoring the system preference.
func For(dark bool) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

// Variant returns the pinned variant.
func Variant(t fyne.Theme) (fyne.ThemeVariant, bool) {
	pinned, ok := t.(*variantTheme)
	if !ok {
		return 0, false
	}
	return pinned.variant, true
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == ColorNameEarnings {
		if t.variant == theme.VariantDark {
			return earningsDark
		}
		return earningsLight
	}
	return t.Theme.Color(name, t.variant)
}
