package squaremap

// Entry records which screen region a node was drawn into, plus the entries
// of whichever of its children were drawn. A slice of entries forms a tree
// isomorphic to the drawn subset of the model.
type Entry[N comparable] struct {
	Rect     Rect
	Node     N
	Children HotMap[N]
}

// HotMap is the per-frame record of drawn rectangles, rebuilt from scratch
// on every Draw. It is the sole input to hit-testing and keyboard
// navigation; entries from a previous frame must never be reused.
type HotMap[N comparable] []Entry[N]

// FindNode locates target in the hot map by node identity. It returns the
// resolved parent node (zero for a root-level match), the list the match was
// found in so callers can index siblings, and the match's index in that
// list. ok is false when target was not drawn this frame.
func FindNode[N comparable](hm HotMap[N], target N) (parent N, list HotMap[N], index int, ok bool) {
	var zero N
	return findNode(hm, target, zero)
}

func findNode[N comparable](hm HotMap[N], target, parent N) (N, HotMap[N], int, bool) {
	for i, entry := range hm {
		if entry.Node == target {
			return parent, hm, i, true
		}
		if p, list, idx, ok := findNode(entry.Children, target, entry.Node); ok {
			return p, list, idx, ok
		}
	}
	var zero N
	return zero, nil, 0, false
}

// FindNodeAtPosition returns the node of the deepest entry whose rectangle
// contains p. When deeper children do not cover the point the nearest
// containing ancestor is returned; the zero node when nothing contains it.
func FindNodeAtPosition[N comparable](hm HotMap[N], p Point) N {
	var zero N
	return findNodeAtPosition(hm, p, zero)
}

func findNodeAtPosition[N comparable](hm HotMap[N], p Point, parent N) N {
	for _, entry := range hm {
		if entry.Rect.Contains(p) {
			return findNodeAtPosition(entry.Children, p, entry.Node)
		}
	}
	return parent
}

// FirstChild returns the first child of the entry at index, or the entry's
// own node when it has no children.
func FirstChild[N comparable](hm HotMap[N], index int) N {
	if children := hm[index].Children; len(children) > 0 {
		return children[0].Node
	}
	return hm[index].Node
}

// NextChild returns the sibling after index, clamped to the end of the list.
func NextChild[N comparable](hm HotMap[N], index int) N {
	return hm[min(index+1, len(hm)-1)].Node
}

// PreviousChild returns the sibling before index, clamped to the start.
func PreviousChild[N comparable](hm HotMap[N], index int) N {
	return hm[max(0, index-1)].Node
}

// FirstNode returns the first root-level node, or the zero node when the
// hot map is empty.
func FirstNode[N comparable](hm HotMap[N]) N {
	if len(hm) == 0 {
		var zero N
		return zero
	}
	return hm[0].Node
}

// LastNode descends into the last entry's children until it reaches a leaf
// and returns that node, or the zero node when the hot map is empty.
func LastNode[N comparable](hm HotMap[N]) N {
	if len(hm) == 0 {
		var zero N
		return zero
	}
	last := hm[len(hm)-1]
	if len(last.Children) > 0 {
		return LastNode(last.Children)
	}
	return last.Node
}
