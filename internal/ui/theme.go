// Package ui provides the Fitness Tracker desktop window.
//
// This file defines a compact Fyne theme whose light/dark variant can be
// pinned from the application config.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FitnessTheme wraps the default Fyne theme with form-friendly sizing.
// When pinned is false the variant requested by the system is used.
type FitnessTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	pinned  bool
}

// ThemeVariantFor maps a config theme name to a Fyne variant. The second
// result is false for "system" and unknown names.
func ThemeVariantFor(name string) (fyne.ThemeVariant, bool) {
	switch name {
	case "light":
		return theme.VariantLight, true
	case "dark":
		return theme.VariantDark, true
	default:
		return 0, false
	}
}

// NewFitnessTheme creates the theme for a config theme name.
func NewFitnessTheme(name string) *FitnessTheme {
	t := &FitnessTheme{base: theme.DefaultTheme()}
	t.SetThemeName(name)
	return t
}

// SetThemeName switches between light, dark and system.
func (t *FitnessTheme) SetThemeName(name string) {
	t.variant, t.pinned = ThemeVariantFor(name)
}

// Color delegates to the base theme, honouring a pinned variant.
func (t *FitnessTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.pinned {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *FitnessTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *FitnessTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size tightens padding so all ten form rows fit without scrolling.
func (t *FitnessTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 7
	default:
		return t.base.Size(name)
	}
}
