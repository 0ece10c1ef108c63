package squaremap

// Adapter translates an application node into the scalars the layout engine
// needs. The engine depends only on this interface; swap in a custom adapter
// to lay out any tree-shaped model. Node identity is ==, so pointer node
// types behave like references and the zero value of N means "no node".
type Adapter[N comparable] interface {
	// Children returns the ordered children of node.
	Children(node N) []N

	// Value returns the non-negative sizing metric for node within parent.
	Value(node, parent N) float64

	// ChildrenSum returns the sum of Value over the given children.
	ChildrenSum(children []N, parent N) float64

	// Overall returns the total value node claims to represent. When it
	// exceeds the children's sum the difference renders as empty space.
	Overall(node N) float64

	// Empty returns the fraction of Overall not accounted for by children,
	// clamped to [0,1]. Zero when Overall is zero.
	Empty(node N) float64

	// Label returns a textual description of node.
	Label(node N) string
}

// Node is a really dumb weighted tree node for use with DefaultAdapter.
type Node struct {
	Name     string
	Value    float64
	Children []*Node
}

// DefaultAdapter adapts *Node trees to the Adapter API. Its Overall is the
// sum of the node's children, which makes Empty always zero; embed it and
// override Overall to visualize empty space.
type DefaultAdapter struct{}

func (DefaultAdapter) Children(node *Node) []*Node {
	return node.Children
}

func (DefaultAdapter) Value(node, parent *Node) float64 {
	return node.Value
}

func (a DefaultAdapter) ChildrenSum(children []*Node, parent *Node) float64 {
	var total float64
	for _, child := range children {
		total += a.Value(child, parent)
	}
	return total
}

func (a DefaultAdapter) Overall(node *Node) float64 {
	return a.ChildrenSum(node.Children, node)
}

func (a DefaultAdapter) Empty(node *Node) float64 {
	return EmptyFraction[*Node](a, node)
}

func (DefaultAdapter) Label(node *Node) string {
	return node.Name
}

// EmptyFraction computes the empty-space fraction from an adapter's Overall
// and ChildrenSum, clamped to [0,1]. Adapters are expected to delegate their
// Empty to it so contract violations (children summing past Overall,
// negative values) degrade to zero instead of propagating.
func EmptyFraction[N comparable](a Adapter[N], node N) float64 {
	overall := a.Overall(node)
	if overall <= 0 {
		return 0
	}
	empty := (overall - a.ChildrenSum(a.Children(node), node)) / overall
	if empty < 0 {
		return 0
	}
	if empty > 1 {
		return 1
	}
	return empty
}
