package squaremap

import "sort"

// pass carries the state of a single layout traversal. A pass lives for one
// Draw call only; everything it produces goes into the hot map it is handed.
type pass[N comparable] struct {
	adapter     Adapter[N]
	renderer    Renderer[N]
	opts        Options
	selected    N
	highlighted N
}

// drawBox draws one node's box and lays out its children inside it. The
// entry appended to hm always carries the full outer rectangle, whether or
// not any children fit, so navigation still reaches leaf and empty nodes.
func (p *pass[N]) drawBox(node N, rect Rect, hm *HotMap[N], depth int) {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return
	}
	selected := node == p.selected
	p.renderer.SetBrush(node, depth, selected, node == p.highlighted)
	p.renderer.SetPen(node, depth, selected)
	// The margin insets drawing only; children divide the full rectangle
	// minus padding.
	p.renderer.DrawRect(rect.Inset(p.opts.Margin))

	outer := rect
	rect = rect.Inset(p.opts.Padding)

	empty := p.adapter.Empty(node)
	labelDrawn := false
	if p.opts.MaxDepth > 0 && depth == p.opts.MaxDepth {
		p.drawIconAndLabel(node, rect, depth, selected)
		labelDrawn = true
	} else if empty > 0 {
		// Reserve a band at the top for the unaccounted-for fraction and
		// push the children down below it.
		band := rect.H * empty
		p.drawIconAndLabel(node, Rect{X: rect.X, Y: rect.Y, W: rect.W, H: band}, depth, selected)
		labelDrawn = true
		rect.Y += band
		rect.H -= band
	}

	childHM := HotMap[N]{}
	if BiggerThanPadding(rect, p.opts.Padding) {
		if children := p.adapter.Children(node); len(children) > 0 {
			p.layoutChildren(children, node, rect, &childHM, depth+1)
		} else if !labelDrawn {
			p.drawIconAndLabel(node, rect, depth, selected)
		}
	}
	// Too small for children: skip them silently, the entry still lands in
	// the hot map.

	*hm = append(*hm, Entry[N]{Rect: outer, Node: node, Children: childHM})
}

func (p *pass[N]) drawIconAndLabel(node N, rect Rect, depth int, selected bool) {
	if !p.opts.Labels {
		return
	}
	p.renderer.DrawIconAndLabel(node, rect, depth, selected)
}

// layoutChildren measures and sorts the siblings, then hands off to
// layoutSorted for the actual subdivision.
func (p *pass[N]) layoutChildren(children []N, parent N, rect Rect, hm *HotMap[N], depth int) {
	nodes := make([]Weighted[N], len(children))
	for i, child := range children {
		nodes[i] = Weighted[N]{Value: p.adapter.Value(child, parent), Node: child}
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Value < nodes[j].Value })
	p.layoutSorted(nodes, parent, rect, hm, depth, p.adapter.ChildrenSum(children, parent))
}

// layoutSorted lays the ascending-sorted siblings out inside rect. In the
// square style large sibling sets are bi-partitioned by value so the result
// looks squarer; otherwise the largest node is sliced off and the rest
// recurse into the remainder with the already-known sum.
func (p *pass[N]) layoutSorted(nodes []Weighted[N], parent N, rect Rect, hm *HotMap[N], depth int, total float64) {
	if total == 0 {
		return
	}
	threshold := p.opts.Padding + p.opts.Margin

	if p.opts.SquareStyle && len(nodes) > 5 {
		headSum, head, tailSum, tail := PartitionByValue(total, nodes, 2.0)
		if len(head) > 0 && len(tail) > 0 {
			headRect, tailRect, ok := SplitBox(headSum/total, rect)
			if ok {
				p.layoutSorted(head, parent, headRect, hm, depth, headSum)
				if BiggerThanPadding(tailRect, threshold) {
					p.layoutSorted(tail, parent, tailRect, hm, depth, tailSum)
				}
			}
			// Nodes that did not fit are dropped, matching the linear
			// branch's truncation policy.
			return
		}
	}

	first := nodes[len(nodes)-1]
	headRect, tailRect, ok := SplitBox(first.Value/total, rect)
	if !ok {
		// The largest slice is zero-sized, so no smaller sibling can be
		// anything else.
		return
	}
	p.drawBox(first.Node, headRect, hm, depth)

	if len(nodes) > 1 && BiggerThanPadding(tailRect, threshold) {
		p.layoutSorted(nodes[:len(nodes)-1], parent, tailRect, hm, depth, total-first.Value)
	}
}
