package squaremap

import "testing"

func TestDefaultAdapterSums(t *testing.T) {
	a := DefaultAdapter{}
	n := &Node{Name: "n", Children: []*Node{leaf("x", 3), leaf("y", 7)}}

	if got := a.ChildrenSum(n.Children, n); got != 10 {
		t.Errorf("ChildrenSum = %v", got)
	}
	if got := a.Overall(n); got != 10 {
		t.Errorf("Overall = %v", got)
	}
	// Overall equals the children sum, so nothing is ever empty.
	if got := a.Empty(n); got != 0 {
		t.Errorf("Empty = %v", got)
	}
	if got := a.Label(n); got != "n" {
		t.Errorf("Label = %q", got)
	}
}

func TestEmptyFractionClamps(t *testing.T) {
	a := claimAdapter{}

	// Children overshooting the claimed value must clamp to zero, not go
	// negative.
	over := &Node{Name: "over", Value: 10, Children: []*Node{leaf("big", 50)}}
	if got := EmptyFraction[*Node](a, over); got != 0 {
		t.Errorf("overshoot Empty = %v, want 0", got)
	}

	// Zero overall claims nothing, so nothing is empty.
	zero := &Node{Name: "zero", Value: 0}
	if got := EmptyFraction[*Node](a, zero); got != 0 {
		t.Errorf("zero-overall Empty = %v, want 0", got)
	}

	half := &Node{Name: "half", Value: 100, Children: []*Node{leaf("c", 50)}}
	if got := EmptyFraction[*Node](a, half); got != 0.5 {
		t.Errorf("Empty = %v, want 0.5", got)
	}
}
