package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestThemeVariantFor(t *testing.T) {
	v, ok := ThemeVariantFor("dark")
	assert.True(t, ok)
	assert.Equal(t, theme.VariantDark, v)

	v, ok = ThemeVariantFor("light")
	assert.True(t, ok)
	assert.Equal(t, theme.VariantLight, v)

	_, ok = ThemeVariantFor("system")
	assert.False(t, ok)
	_, ok = ThemeVariantFor("")
	assert.False(t, ok)
}

func TestFitnessThemePinnedVariant(t *testing.T) {
	ft := NewFitnessTheme("light")
	base := theme.DefaultTheme()

	// A pinned light theme ignores the dark variant from the system.
	got := ft.Color(theme.ColorNameBackground, theme.VariantDark)
	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantLight), got)

	ft.SetThemeName("system")
	got = ft.Color(theme.ColorNameBackground, theme.VariantDark)
	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantDark), got)
}

func TestFitnessThemeSize(t *testing.T) {
	ft := NewFitnessTheme("system")
	assert.Equal(t, float32(4), ft.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), ft.Size(theme.SizeNameScrollBar))
}
