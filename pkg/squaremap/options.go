package squaremap

import "fmt"

// Options configures a Widget's layout behavior.
type Options struct {
	// Padding is the inset between a box and its children.
	Padding float64
	// Margin is a drawing-only inset around each box; children still divide
	// the unmargined rectangle.
	Margin float64
	// Labels enables label regions for leaves and empty space.
	Labels bool
	// Highlight enables pointer-move tracking of the hovered node.
	Highlight bool
	// SquareStyle bi-partitions sibling sets larger than five by value
	// balance instead of slicing them off one at a time. Squarer boxes,
	// less obvious next/previous ordering.
	SquareStyle bool
	// MaxDepth limits recursion depth; zero means unlimited. Deeply nested
	// or adversarial models need this as a safety valve.
	MaxDepth int
}

// DefaultOptions returns pixel-oriented defaults suitable for image
// renderers. Cell-based hosts want far smaller insets.
func DefaultOptions() Options {
	return Options{Padding: 3, Margin: 5, Labels: true, Highlight: true}
}

func (o Options) validate() error {
	if o.Padding < 0 {
		return fmt.Errorf("squaremap: negative padding %v", o.Padding)
	}
	if o.Margin < 0 {
		return fmt.Errorf("squaremap: negative margin %v", o.Margin)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("squaremap: negative max depth %d", o.MaxDepth)
	}
	return nil
}
