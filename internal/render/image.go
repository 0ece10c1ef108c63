package render

import (
	"fmt"
	"image/color"

	"git.sr.ht/~sbinet/gg"

	"github.com/termim/qsquaremap/pkg/squaremap"
)

// ImageRenderer draws square-map boxes onto a gg raster context.
type ImageRenderer[N comparable] struct {
	dc      *gg.Context
	label   func(N) string
	padding float64

	fill color.RGBA
	pen  color.RGBA
}

// NewImageRenderer wraps a gg context. label supplies box captions and
// padding drives the corner-rounding policy.
func NewImageRenderer[N comparable](dc *gg.Context, label func(N) string, padding float64) *ImageRenderer[N] {
	return &ImageRenderer[N]{dc: dc, label: label, padding: padding}
}

func (r *ImageRenderer[N]) SetBrush(node N, depth int, selected, highlighted bool) {
	switch {
	case selected:
		r.fill = selectedFill
	case highlighted:
		r.fill = highlightedFill
	default:
		r.fill = depthFill(depth)
	}
}

func (r *ImageRenderer[N]) SetPen(node N, depth int, selected bool) {
	if selected {
		r.pen = selectedPen
	} else {
		r.pen = defaultPen
	}
}

func (r *ImageRenderer[N]) DrawRect(rect squaremap.Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if radius := cornerRadius(r.padding, rect.W, rect.H); radius > 0 {
		r.dc.DrawRoundedRectangle(rect.X, rect.Y, rect.W, rect.H, radius)
	} else {
		r.dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	}
	r.dc.SetColor(r.fill)
	r.dc.FillPreserve()
	r.dc.SetColor(r.pen)
	r.dc.Stroke()
}

func (r *ImageRenderer[N]) DrawIconAndLabel(node N, rect squaremap.Rect, depth int, selected bool) {
	// No room for readable text, skip quietly.
	if rect.W < 16 || rect.H < 12 {
		return
	}
	r.dc.Push()
	r.dc.DrawRectangle(rect.X+1, rect.Y+1, rect.W-2, rect.H-2)
	r.dc.Clip()
	r.dc.SetColor(labelColor)
	r.dc.DrawStringAnchored(r.label(node), rect.X+4, rect.Y+4, 0, 1)
	r.dc.ResetClip()
	r.dc.Pop()
}

var _ squaremap.Renderer[int] = (*ImageRenderer[int])(nil)

// SavePNG lays the widget out at the given pixel size and writes a PNG.
func SavePNG[N comparable](path string, width, height int, w *squaremap.Widget[N]) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid image size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB255(128, 128, 128) // the widget's background gray
	dc.Clear()

	renderer := NewImageRenderer[N](dc, w.Adapter().Label, w.Options().Padding)
	w.Draw(squaremap.Rect{W: float64(width), H: float64(height)}, renderer)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save png: %w", err)
	}
	return nil
}
