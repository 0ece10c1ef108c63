// Package render provides offscreen renderers that turn a square map into
// PNG or SVG files.
package render

import "image/color"

// Selection and highlight colors, matching the interactive view.
var (
	selectedFill    = color.RGBA{R: 255, A: 255}
	highlightedFill = color.RGBA{G: 255, A: 255}
	defaultPen      = color.RGBA{A: 255}
	selectedPen     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// depthFill cycles fill colors by depth so nesting reads at a glance.
func depthFill(depth int) color.RGBA {
	return color.RGBA{
		R: uint8((depth * 10) % 255),
		G: uint8(255 - (depth*5)%255),
		B: uint8((depth * 25) % 255),
		A: 255,
	}
}

// cornerRadius picks a rounding radius for a box, shrinking it on small
// boxes and dropping to square corners when the box is tiny.
func cornerRadius(padding, w, h float64) float64 {
	r := padding * 3
	if w <= r*2 || h <= r*2 {
		r = min(w/2, h/2)
		if r < 1 {
			r = 0
		}
	}
	return r
}
