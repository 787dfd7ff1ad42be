package ui

import (
	"fyne.io/fyne/v2"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newButtonWithTooltip creates a text button with a tooltip that appears on hover.
func newButtonWithTooltip(label, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButton(label, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// withToolTipLayer wraps the window content so tooltips can be drawn above it.
func withToolTipLayer(content fyne.CanvasObject, w fyne.Window) fyne.CanvasObject {
	return fynetooltip.AddWindowToolTipLayer(content, w.Canvas())
}
