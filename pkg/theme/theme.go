// Package theme is the Fyne theme of the speedview demo.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// The gauge draws black labels, so the demo stays on a light background.
var (
	Background = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF2, A: 255}
	Primary    = color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 255}
)

type GaugeTheme struct{}

var _ fyne.Theme = GaugeTheme{}

func (m GaugeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return Background
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return Primary
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (m GaugeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m GaugeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m GaugeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInputRadius:
		return 5
	case theme.SizeNameSelectionRadius:
		return 3
	default:
		return theme.DefaultTheme().Size(name)
	}
}
