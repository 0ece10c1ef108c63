package squaremap

import "github.com/charmbracelet/log"

// Key identifies the navigation keys the widget understands. The host shell
// is responsible for translating its own key events into these.
type Key int

const (
	KeyNone Key = iota
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

// NotifyFunc receives a notification about a node. at is the pointer
// position that caused it, nil for keyboard-driven changes.
type NotifyFunc[N comparable] func(node N, at *Point, w *Widget[N])

// Widget owns the current model, adapter, hot map and interaction state,
// and turns pointer and key events into selection changes. It is not safe
// for concurrent use; hosts that deliver events and draws from different
// goroutines must serialize them.
type Widget[N comparable] struct {
	model   N
	adapter Adapter[N]
	opts    Options
	logger  *log.Logger

	hotMap HotMap[N]

	active      N
	selected    N
	highlighted N

	// Observers. A nil slot simply drops that notification. None of them
	// fire when the corresponding node is cleared to the zero node.
	OnHighlight NotifyFunc[N]
	OnSelect    NotifyFunc[N]
	OnActivate  NotifyFunc[N]
}

// New creates a widget for the given model and adapter. Invalid options are
// a programmer error and are rejected immediately rather than silently
// misbehaving during layout.
func New[N comparable](model N, adapter Adapter[N], opts Options) (*Widget[N], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Widget[N]{model: model, adapter: adapter, opts: opts}, nil
}

// SetLogger installs a diagnostic logger. The widget stays quiet without one.
func (w *Widget[N]) SetLogger(logger *log.Logger) {
	w.logger = logger
}

// SetModel replaces the model wholesale and resets all interaction state.
// A nil adapter keeps the current one.
func (w *Widget[N]) SetModel(model N, adapter Adapter[N]) {
	var zero N
	w.model = model
	if adapter != nil {
		w.adapter = adapter
	}
	w.hotMap = nil
	w.active = zero
	w.selected = zero
	w.highlighted = zero
}

// Options returns the widget's layout options.
func (w *Widget[N]) Options() Options {
	return w.opts
}

// Adapter returns the widget's current adapter.
func (w *Widget[N]) Adapter() Adapter[N] {
	return w.adapter
}

// HotMap returns the hot map from the most recent Draw. It is valid only
// until the next Draw or SetModel.
func (w *Widget[N]) HotMap() HotMap[N] {
	return w.hotMap
}

// Draw lays the model out into rect, emitting drawing commands to renderer
// and rebuilding the hot map from scratch. Everything runs synchronously
// within this call.
func (w *Widget[N]) Draw(rect Rect, renderer Renderer[N]) {
	var zero N
	hm := HotMap[N]{}
	if w.model != zero {
		p := &pass[N]{
			adapter:     w.adapter,
			renderer:    renderer,
			opts:        w.opts,
			selected:    w.selected,
			highlighted: w.highlighted,
		}
		p.drawBox(w.model, rect, &hm, 0)
	}
	w.hotMap = hm
}

// ActiveNode returns the currently active node, zero when none.
func (w *Widget[N]) ActiveNode() N { return w.active }

// SelectedNode returns the currently selected node, zero when none.
func (w *Widget[N]) SelectedNode() N { return w.selected }

// HighlightedNode returns the currently highlighted node, zero when none.
func (w *Widget[N]) HighlightedNode() N { return w.highlighted }

// SetActiveNode makes node the active one. It reports whether the state
// changed, so hosts know to repaint. Clearing to the zero node changes
// state but never notifies.
func (w *Widget[N]) SetActiveNode(node N, at *Point) bool {
	var zero N
	if node == w.active {
		return false
	}
	w.active = node
	if node != zero && w.OnActivate != nil {
		w.OnActivate(node, at, w)
	}
	return true
}

// SetSelectedNode makes node the selected one, with the same change
// reporting and skip-on-zero notification rule as SetActiveNode.
func (w *Widget[N]) SetSelectedNode(node N, at *Point) bool {
	var zero N
	if node == w.selected {
		return false
	}
	w.selected = node
	if node != zero && w.OnSelect != nil {
		w.OnSelect(node, at, w)
	}
	return true
}

// SetHighlightedNode makes node the highlighted one, with the same change
// reporting and skip-on-zero notification rule as SetActiveNode.
func (w *Widget[N]) SetHighlightedNode(node N, at *Point) bool {
	var zero N
	if node == w.highlighted {
		return false
	}
	w.highlighted = node
	if node != zero && w.OnHighlight != nil {
		w.OnHighlight(node, at, w)
	}
	return true
}

// MouseMove hit-tests the pointer position and highlights the node under
// it. Disabled unless the Highlight option is on.
func (w *Widget[N]) MouseMove(at Point) bool {
	if !w.opts.Highlight {
		return false
	}
	node := FindNodeAtPosition(w.hotMap, at)
	return w.SetHighlightedNode(node, &at)
}

// MouseRelease selects the node under the pointer.
func (w *Widget[N]) MouseRelease(at Point) bool {
	node := FindNodeAtPosition(w.hotMap, at)
	return w.SetSelectedNode(node, &at)
}

// DoubleClick activates the node under the pointer, if any.
func (w *Widget[N]) DoubleClick(at Point) bool {
	var zero N
	node := FindNodeAtPosition(w.hotMap, at)
	if node == zero {
		return false
	}
	return w.SetActiveNode(node, &at)
}

// KeyPress moves the selection through the hot map. It reports whether the
// interaction state changed. Without a selected node or a hot map there is
// nothing to navigate and the key is ignored.
func (w *Widget[N]) KeyPress(key Key) bool {
	var zero N
	if w.selected == zero || len(w.hotMap) == 0 {
		return false
	}

	switch key {
	case KeyHome:
		return w.SetSelectedNode(FirstNode(w.hotMap), nil)
	case KeyEnd:
		return w.SetSelectedNode(LastNode(w.hotMap), nil)
	}

	parent, siblings, index, ok := FindNode(w.hotMap, w.selected)
	if !ok {
		// The model may have changed underneath the selection; nothing to
		// navigate from.
		w.logf("no hot-map record for node %v", w.adapter.Label(w.selected))
		return false
	}

	switch key {
	case KeyDown:
		return w.SetSelectedNode(NextChild(siblings, index), nil)
	case KeyUp:
		return w.SetSelectedNode(PreviousChild(siblings, index), nil)
	case KeyRight:
		return w.SetSelectedNode(FirstChild(siblings, index), nil)
	case KeyLeft:
		if parent != zero {
			return w.SetSelectedNode(parent, nil)
		}
	case KeyEnter:
		return w.SetActiveNode(w.selected, nil)
	}
	return false
}

func (w *Widget[N]) logf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Infof(format, args...)
	}
}
