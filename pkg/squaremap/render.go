package squaremap

// Renderer receives drawing commands while the layout engine walks the
// tree. For every box drawn the engine calls, in order: SetBrush, SetPen,
// DrawRect, and possibly DrawIconAndLabel. The call order is deterministic
// so renderers can be tested by recording the calls they receive. Corner
// rounding, fonts and colors are entirely the renderer's business; the
// engine only supplies the node, rectangle, depth and selection flags.
type Renderer[N comparable] interface {
	SetBrush(node N, depth int, selected, highlighted bool)
	SetPen(node N, depth int, selected bool)
	DrawRect(r Rect)
	DrawIconAndLabel(node N, r Rect, depth int, selected bool)
}

// NopRenderer discards all drawing commands. Useful when only the hot map
// is wanted, e.g. hit-testing before anything has been painted.
type NopRenderer[N comparable] struct{}

func (NopRenderer[N]) SetBrush(N, int, bool, bool)         {}
func (NopRenderer[N]) SetPen(N, int, bool)                 {}
func (NopRenderer[N]) DrawRect(Rect)                       {}
func (NopRenderer[N]) DrawIconAndLabel(N, Rect, int, bool) {}

// RenderCall is one recorded renderer invocation.
type RenderCall[N comparable] struct {
	Op          string // "brush", "pen", "rect", "label"
	Node        N
	Rect        Rect
	Depth       int
	Selected    bool
	Highlighted bool
}

// RecordingRenderer captures the command stream for inspection in tests.
type RecordingRenderer[N comparable] struct {
	Calls []RenderCall[N]
}

func (r *RecordingRenderer[N]) SetBrush(node N, depth int, selected, highlighted bool) {
	r.Calls = append(r.Calls, RenderCall[N]{Op: "brush", Node: node, Depth: depth, Selected: selected, Highlighted: highlighted})
}

func (r *RecordingRenderer[N]) SetPen(node N, depth int, selected bool) {
	r.Calls = append(r.Calls, RenderCall[N]{Op: "pen", Node: node, Depth: depth, Selected: selected})
}

func (r *RecordingRenderer[N]) DrawRect(rect Rect) {
	r.Calls = append(r.Calls, RenderCall[N]{Op: "rect", Rect: rect})
}

func (r *RecordingRenderer[N]) DrawIconAndLabel(node N, rect Rect, depth int, selected bool) {
	r.Calls = append(r.Calls, RenderCall[N]{Op: "label", Node: node, Rect: rect, Depth: depth, Selected: selected})
}

// Ops returns just the operation names, in call order.
func (r *RecordingRenderer[N]) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}
