package appearance

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPinsVariant(t *testing.T) {
	dark := For(true)
	light := For(false)

	variant, ok := Variant(dark)
	require.True(t, ok)
	assert.Equal(t, theme.VariantDark, variant)

	variant, ok = Variant(light)
	require.True(t, ok)
	assert.Equal(t, theme.VariantLight, variant)

	base := theme.DefaultTheme()
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestEarningsColorFollowsVariant(t *testing.T) {
	assert.Equal(t, earningsDark, For(true).Color(ColorNameEarnings, theme.VariantLight))
	assert.Equal(t, earningsLight, For(false).Color(ColorNameEarnings, theme.VariantDark))
}

func TestVariantOfForeignTheme(t *testing.T) {
	_, ok := Variant(theme.DefaultTheme())
	assert.False(t, ok)
}
