package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termim/qsquaremap/internal/model"
	"github.com/termim/qsquaremap/pkg/squaremap"
)

// cellRenderer rasterizes square-map drawing commands into a terminal cell
// grid. One drawing-surface unit is one cell.
type cellRenderer struct {
	grid   [][]rune
	styles [][]lipgloss.Style
	w, h   int
	label  func(*model.FSNode) string

	boxStyle    lipgloss.Style
	borderStyle lipgloss.Style
}

func newCellRenderer(w, h int, label func(*model.FSNode) string) *cellRenderer {
	grid := make([][]rune, h)
	styles := make([][]lipgloss.Style, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		styles[y] = make([]lipgloss.Style, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	return &cellRenderer{grid: grid, styles: styles, w: w, h: h, label: label}
}

func (r *cellRenderer) SetBrush(node *model.FSNode, depth int, selected, highlighted bool) {
	switch {
	case selected:
		r.boxStyle = SelectedBoxStyle
	case highlighted:
		r.boxStyle = HighlightedBoxStyle
	default:
		r.boxStyle = DepthStyle(depth)
	}
}

func (r *cellRenderer) SetPen(node *model.FSNode, depth int, selected bool) {
	if selected {
		r.borderStyle = r.boxStyle.Foreground(lipgloss.Color("#FFFFFF"))
	} else {
		r.borderStyle = r.boxStyle.Foreground(ColorBorder)
	}
}

func (r *cellRenderer) set(x, y int, ch rune, style lipgloss.Style) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.grid[y][x] = ch
	r.styles[y][x] = style
}

func (r *cellRenderer) DrawRect(rect squaremap.Rect) {
	x0, y0 := int(math.Round(rect.X)), int(math.Round(rect.Y))
	x1, y1 := int(math.Round(rect.X+rect.W)), int(math.Round(rect.Y+rect.H))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ' ', r.boxStyle)
		}
	}

	// Borders only when the box is big enough to keep an interior.
	if x1-x0 < 3 || y1-y0 < 3 {
		return
	}
	for x := x0; x < x1; x++ {
		r.set(x, y0, '─', r.borderStyle)
		r.set(x, y1-1, '─', r.borderStyle)
	}
	for y := y0; y < y1; y++ {
		r.set(x0, y, '│', r.borderStyle)
		r.set(x1-1, y, '│', r.borderStyle)
	}
	r.set(x0, y0, '┌', r.borderStyle)
	r.set(x1-1, y0, '┐', r.borderStyle)
	r.set(x0, y1-1, '└', r.borderStyle)
	r.set(x1-1, y1-1, '┘', r.borderStyle)
}

func (r *cellRenderer) DrawIconAndLabel(node *model.FSNode, rect squaremap.Rect, depth int, selected bool) {
	x0, y0 := int(math.Round(rect.X)), int(math.Round(rect.Y))
	x1 := int(math.Round(rect.X + rect.W))
	if x1-x0 < 4 || rect.H < 1 {
		return
	}
	// Truncate over runes; byte slicing would cut multi-byte names mid-rune
	// and misplace the cells.
	text := []rune(r.label(node))
	maxLen := x1 - x0 - 2
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	for i, ch := range text {
		r.set(x0+1+i, y0, ch, r.boxStyle)
	}
}

func (r *cellRenderer) lines() []string {
	out := make([]string, r.h)
	for y := 0; y < r.h; y++ {
		var line strings.Builder
		for x := 0; x < r.w; x++ {
			line.WriteString(r.styles[y][x].Render(string(r.grid[y][x])))
		}
		out[y] = line.String()
	}
	return out
}

var _ squaremap.Renderer[*model.FSNode] = (*cellRenderer)(nil)

// MapPanel hosts the square-map widget inside a bordered terminal panel.
type MapPanel struct {
	widget  *squaremap.Widget[*model.FSNode]
	width   int
	height  int
	focused bool
}

// NewMapPanel creates a panel with the given layout options.
func NewMapPanel(opts squaremap.Options) (*MapPanel, error) {
	w, err := squaremap.New[*model.FSNode](nil, model.MapAdapter{}, opts)
	if err != nil {
		return nil, err
	}
	return &MapPanel{widget: w}, nil
}

// Widget exposes the underlying square-map widget so callers can install
// notification hooks.
func (p *MapPanel) Widget() *squaremap.Widget[*model.FSNode] {
	return p.widget
}

// SetRoot replaces the displayed tree.
func (p *MapPanel) SetRoot(root *model.FSNode) {
	p.widget.SetModel(root, nil)
}

// SetSize sets the outer panel dimensions.
func (p *MapPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// SetFocused sets the focus state, which controls the border color.
func (p *MapPanel) SetFocused(focused bool) {
	p.focused = focused
}

// contentSize returns the drawable area inside the border.
func (p *MapPanel) contentSize() (int, int) {
	return max(p.width-2, 1), max(p.height-2, 1)
}

// HandleKey feeds a navigation key to the widget. A key press with nothing
// selected selects the root-level node first.
func (p *MapPanel) HandleKey(k squaremap.Key) bool {
	if k == squaremap.KeyNone {
		return false
	}
	hm := p.widget.HotMap()
	if p.widget.SelectedNode() == nil && len(hm) > 0 {
		return p.widget.SetSelectedNode(squaremap.FirstNode(hm), nil)
	}
	return p.widget.KeyPress(k)
}

// MouseMove, MouseRelease and DoubleClick translate panel-local cell
// coordinates (already adjusted for the border by the caller) into widget
// events.
func (p *MapPanel) MouseMove(x, y int) bool {
	return p.widget.MouseMove(squaremap.Point{X: float64(x), Y: float64(y)})
}

func (p *MapPanel) MouseRelease(x, y int) bool {
	return p.widget.MouseRelease(squaremap.Point{X: float64(x), Y: float64(y)})
}

func (p *MapPanel) DoubleClick(x, y int) bool {
	return p.widget.DoubleClick(squaremap.Point{X: float64(x), Y: float64(y)})
}

// View renders the panel.
func (p *MapPanel) View() string {
	style := MapPanelStyle.Width(p.width - 2).Height(p.height - 2)
	if p.focused {
		style = style.BorderForeground(ColorPrimary)
	}

	cw, ch := p.contentSize()
	renderer := newCellRenderer(cw, ch, model.MapAdapter{}.Label)
	p.widget.Draw(squaremap.Rect{W: float64(cw), H: float64(ch)}, renderer)

	return style.Render(strings.Join(renderer.lines(), "\n"))
}
