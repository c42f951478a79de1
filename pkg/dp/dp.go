// Package dp converts density-independent sizes to device pixels.
package dp

import "fyne.io/fyne/v2"

// ToPx returns value scaled by density, truncated toward zero.
func ToPx(density float32, value int) int {
	return int(float32(value) * density)
}

// Density returns the scale of the canvas obj is drawn on, or 1 when obj is
// not attached to a canvas.
func Density(obj fyne.CanvasObject) float32 {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(obj); c != nil {
		if s := c.Scale(); s > 0 {
			return s
		}
	}
	return 1
}
