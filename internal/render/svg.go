package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/termim/qsquaremap/pkg/squaremap"
)

// SVGRenderer draws square-map boxes as SVG elements.
type SVGRenderer[N comparable] struct {
	canvas  *svg.SVG
	label   func(N) string
	padding float64

	fill color.RGBA
	pen  color.RGBA
}

// NewSVGRenderer wraps an svgo canvas that has already been started.
func NewSVGRenderer[N comparable](canvas *svg.SVG, label func(N) string, padding float64) *SVGRenderer[N] {
	return &SVGRenderer[N]{canvas: canvas, label: label, padding: padding}
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (r *SVGRenderer[N]) SetBrush(node N, depth int, selected, highlighted bool) {
	switch {
	case selected:
		r.fill = selectedFill
	case highlighted:
		r.fill = highlightedFill
	default:
		r.fill = depthFill(depth)
	}
}

func (r *SVGRenderer[N]) SetPen(node N, depth int, selected bool) {
	if selected {
		r.pen = selectedPen
	} else {
		r.pen = defaultPen
	}
}

func (r *SVGRenderer[N]) DrawRect(rect squaremap.Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", css(r.fill), css(r.pen))
	radius := int(cornerRadius(r.padding, rect.W, rect.H))
	x, y, w, h := int(rect.X), int(rect.Y), int(rect.W), int(rect.H)
	if radius > 0 {
		r.canvas.Roundrect(x, y, w, h, radius, radius, style)
	} else {
		r.canvas.Rect(x, y, w, h, style)
	}
}

func (r *SVGRenderer[N]) DrawIconAndLabel(node N, rect squaremap.Rect, depth int, selected bool) {
	if rect.W < 16 || rect.H < 12 {
		return
	}
	style := fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", css(labelColor))
	r.canvas.Text(int(rect.X)+4, int(rect.Y)+12, r.label(node), style)
}

var _ squaremap.Renderer[int] = (*SVGRenderer[int])(nil)

// WriteSVG lays the widget out at the given size and writes an SVG document.
func WriteSVG[N comparable](out io.Writer, width, height int, w *squaremap.Widget[N]) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid image size %dx%d", width, height)
	}
	canvas := svg.New(out)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#808080")

	renderer := NewSVGRenderer[N](canvas, w.Adapter().Label, w.Options().Padding)
	w.Draw(squaremap.Rect{W: float64(width), H: float64(height)}, renderer)

	canvas.End()
	return nil
}

// SaveSVG writes the SVG document to a file.
func SaveSVG[N comparable](path string, width, height int, w *squaremap.Widget[N]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create svg: %w", err)
	}
	defer f.Close()
	return WriteSVG(f, width, height, w)
}
