package squaremap

// Point is a position in drawing-surface coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in drawing-surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p falls inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so adjacent rectangles
// never both claim a shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset returns r shrunk by d on all four sides. The result may have
// negative width or height when d exceeds half the dimension.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Area returns the area of r.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// SplitBox splits r into head and tail along whichever dimension is larger,
// with head taking the given fraction. Ties split along the width. ok is
// false when the head dimension computes to exactly zero, which means this
// slice and every remaining sibling would be zero-sized.
func SplitBox(fraction float64, r Rect) (head, tail Rect, ok bool) {
	if r.W >= r.H {
		headW := r.W * fraction
		if headW == 0 {
			return Rect{}, Rect{}, false
		}
		head = Rect{X: r.X, Y: r.Y, W: headW, H: r.H}
		tail = Rect{X: r.X + headW, Y: r.Y, W: r.W - headW, H: r.H}
	} else {
		headH := r.H * fraction
		if headH == 0 {
			return Rect{}, Rect{}, false
		}
		head = Rect{X: r.X, Y: r.Y, W: r.W, H: headH}
		tail = Rect{X: r.X, Y: r.Y + headH, W: r.W, H: r.H - headH}
	}
	return head, tail, true
}

// BiggerThanPadding reports whether both dimensions of r strictly exceed
// twice the threshold. Recursing into anything smaller produces slivers no
// box can usefully occupy.
func BiggerThanPadding(r Rect, threshold float64) bool {
	return r.W > threshold*2 && r.H > threshold*2
}

// Weighted pairs a node with the value it was measured at, so a layout pass
// evaluates each adapter value exactly once.
type Weighted[N any] struct {
	Value float64
	Node  N
}

// PartitionByValue greedily moves nodes from the high end of the
// ascending-sorted slice into head until head's accumulated value reaches
// total/headDivisor. The node that crosses the threshold stays in head, and
// head always receives at least one node even when every value is zero.
// headSum+tailSum == total and head and tail together cover nodes exactly.
func PartitionByValue[N any](total float64, nodes []Weighted[N], headDivisor float64) (headSum float64, head []Weighted[N], tailSum float64, tail []Weighted[N]) {
	divider := len(nodes)
	for i := len(nodes) - 1; i >= 0; i-- {
		if divider < len(nodes) && headSum >= total/headDivisor {
			break
		}
		headSum += nodes[i].Value
		divider = i
	}
	return headSum, nodes[divider:], total - headSum, nodes[:divider]
}
