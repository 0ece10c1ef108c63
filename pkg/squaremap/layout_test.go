package squaremap

import (
	"math"
	"reflect"
	"testing"
)

// flatOptions removes the cosmetic insets so geometry assertions are exact.
func flatOptions() Options {
	return Options{Padding: 0, Margin: 0, Labels: true, Highlight: true}
}

func leaf(name string, value float64) *Node {
	return &Node{Name: name, Value: value}
}

func mustWidget(t *testing.T, root *Node, opts Options) *Widget[*Node] {
	t.Helper()
	w, err := New[*Node](root, DefaultAdapter{}, opts)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// claimAdapter sizes nodes by their own Value field instead of the children
// sum, so nodes claiming more than their children show empty space.
type claimAdapter struct {
	DefaultAdapter
}

func (a claimAdapter) Overall(node *Node) float64 {
	return node.Value
}

func (a claimAdapter) Empty(node *Node) float64 {
	return EmptyFraction[*Node](a, node)
}

func rectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func rectContains(outer, inner Rect) bool {
	const eps = 1e-9
	return inner.X >= outer.X-eps && inner.Y >= outer.Y-eps &&
		inner.X+inner.W <= outer.X+outer.W+eps &&
		inner.Y+inner.H <= outer.Y+outer.H+eps
}

// checkHotMap walks the hot map verifying sibling rectangles are pairwise
// disjoint and every child rectangle sits inside its parent's.
func checkHotMap(t *testing.T, hm HotMap[*Node], bounds Rect) {
	t.Helper()
	for i, entry := range hm {
		if !rectContains(bounds, entry.Rect) {
			t.Errorf("entry %q rect %+v escapes bounds %+v", entry.Node.Name, entry.Rect, bounds)
		}
		for j := i + 1; j < len(hm); j++ {
			if rectsOverlap(entry.Rect, hm[j].Rect) {
				t.Errorf("siblings %q %+v and %q %+v overlap",
					entry.Node.Name, entry.Rect, hm[j].Node.Name, hm[j].Rect)
			}
		}
		checkHotMap(t, entry.Children, entry.Rect)
	}
}

func TestLayoutLinearScenario(t *testing.T) {
	// Three leaves 10/30/60 in a 100x100 rect: the largest gets 60% along
	// the width, then 30 gets 75% of the remainder's height, 10 the rest.
	root := &Node{Name: "root", Children: []*Node{
		leaf("small", 10), leaf("medium", 30), leaf("large", 60),
	}}
	w := mustWidget(t, root, flatOptions())
	w.Draw(Rect{W: 100, H: 100}, NopRenderer[*Node]{})

	hm := w.HotMap()
	if len(hm) != 1 || hm[0].Node != root {
		t.Fatalf("expected single root entry, got %d", len(hm))
	}
	children := hm[0].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 child entries, got %d", len(children))
	}

	want := []struct {
		name string
		rect Rect
	}{
		{"large", Rect{X: 0, Y: 0, W: 60, H: 100}},
		{"medium", Rect{X: 60, Y: 0, W: 40, H: 75}},
		{"small", Rect{X: 60, Y: 75, W: 40, H: 25}},
	}
	for i, wantEntry := range want {
		got := children[i]
		if got.Node.Name != wantEntry.name {
			t.Errorf("child %d = %q, want %q", i, got.Node.Name, wantEntry.name)
		}
		if got.Rect != wantEntry.rect {
			t.Errorf("%q rect = %+v, want %+v", wantEntry.name, got.Rect, wantEntry.rect)
		}
	}
	checkHotMap(t, hm, Rect{W: 100, H: 100})
}

func TestLayoutSquareStyle(t *testing.T) {
	// Seven equal children with the square style: value bi-partition puts
	// four in the left 4/7 of the rect and three in the right 3/7.
	var kids []*Node
	for i := 0; i < 7; i++ {
		kids = append(kids, leaf(string(rune('a'+i)), 10))
	}
	root := &Node{Name: "root", Children: kids}
	opts := flatOptions()
	opts.SquareStyle = true
	w := mustWidget(t, root, opts)
	w.Draw(Rect{W: 100, H: 100}, NopRenderer[*Node]{})

	children := w.HotMap()[0].Children
	if len(children) != 7 {
		t.Fatalf("expected all 7 children drawn, got %d", len(children))
	}

	boundary := 100 * 4.0 / 7.0
	var left, right int
	for _, entry := range children {
		if entry.Rect.X+entry.Rect.W <= boundary+1e-9 {
			left++
		} else if entry.Rect.X >= boundary-1e-9 {
			right++
		} else {
			t.Errorf("%q rect %+v straddles the partition boundary", entry.Node.Name, entry.Rect)
		}
	}
	if left != 4 || right != 3 {
		t.Errorf("partition split %d/%d, want 4/3", left, right)
	}
	checkHotMap(t, w.HotMap(), Rect{W: 100, H: 100})
}

func TestLayoutSquareStyleSmallSetStaysLinear(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		leaf("a", 10), leaf("b", 30), leaf("c", 60),
	}}
	opts := flatOptions()
	opts.SquareStyle = true
	w := mustWidget(t, root, opts)
	w.Draw(Rect{W: 100, H: 100}, NopRenderer[*Node]{})

	// With five or fewer siblings the linear branch applies: largest first.
	children := w.HotMap()[0].Children
	if children[0].Node.Name != "c" || children[0].Rect.W != 60 {
		t.Errorf("first child = %q %+v, want linear slicing", children[0].Node.Name, children[0].Rect)
	}
}

func TestLayoutZeroTotalDrawsNothing(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{leaf("a", 0), leaf("b", 0)}}
	w := mustWidget(t, root, flatOptions())
	w.Draw(Rect{W: 100, H: 100}, NopRenderer[*Node]{})

	hm := w.HotMap()
	if len(hm) != 1 {
		t.Fatalf("root entry missing")
	}
	if len(hm[0].Children) != 0 {
		t.Errorf("zero-weight children should not be drawn, got %d entries", len(hm[0].Children))
	}
}

func TestLayoutIdempotent(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		leaf("a", 5),
		{Name: "b", Children: []*Node{leaf("b1", 7), leaf("b2", 2)}},
		leaf("c", 11),
	}}
	w := mustWidget(t, root, flatOptions())

	w.Draw(Rect{W: 120, H: 80}, NopRenderer[*Node]{})
	first := w.HotMap()
	w.Draw(Rect{W: 120, H: 80}, NopRenderer[*Node]{})
	second := w.HotMap()

	if !reflect.DeepEqual(first, second) {
		t.Error("two layouts of an unchanged model differ")
	}
}

func TestLayoutDepthCutoff(t *testing.T) {
	// Internal nodes need weight of their own, or the zero-total short
	// circuit would stop the layout before the depth limit is reached.
	root := &Node{Name: "d0", Children: []*Node{
		{Name: "d1", Value: 1, Children: []*Node{
			{Name: "d2", Value: 1, Children: []*Node{leaf("d3", 1)}},
		}},
	}}
	opts := flatOptions()
	opts.MaxDepth = 1
	w := mustWidget(t, root, opts)
	w.Draw(Rect{W: 100, H: 100}, NopRenderer[*Node]{})

	hm := w.HotMap()
	if len(hm) != 1 || len(hm[0].Children) != 1 {
		t.Fatal("expected root and one child entry")
	}
	if deeper := hm[0].Children[0].Children; len(deeper) != 0 {
		t.Errorf("entries beyond the depth limit: %d", len(deeper))
	}
}

func TestLayoutEmptyFractionReservesBand(t *testing.T) {
	// Node claims 100 but children only sum to 60: a 40%-high label band
	// is reserved and the children land below it.
	root := &Node{Name: "root", Value: 100, Children: []*Node{
		leaf("a", 40), leaf("b", 20),
	}}
	rec := &RecordingRenderer[*Node]{}
	w, err := New[*Node](root, claimAdapter{}, flatOptions())
	if err != nil {
		t.Fatal(err)
	}
	w.Draw(Rect{W: 100, H: 100}, rec)

	var band *RenderCall[*Node]
	for i, call := range rec.Calls {
		if call.Op == "label" && call.Node == root {
			band = &rec.Calls[i]
			break
		}
	}
	if band == nil {
		t.Fatal("no label band drawn for the empty fraction")
	}
	if math.Abs(band.Rect.H-40) > 1e-9 || band.Rect.Y != 0 {
		t.Errorf("band rect = %+v, want 40-high band at the top", band.Rect)
	}

	for _, entry := range w.HotMap()[0].Children {
		if entry.Rect.Y < 40 {
			t.Errorf("child %q at %+v overlaps the label band", entry.Node.Name, entry.Rect)
		}
	}
}

func TestLayoutRendererCallOrder(t *testing.T) {
	rec := &RecordingRenderer[*Node]{}
	w := mustWidget(t, leaf("only", 5), flatOptions())
	w.Draw(Rect{W: 50, H: 50}, rec)

	want := []string{"brush", "pen", "rect", "label"}
	if got := rec.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
}

func TestLayoutLabelsDisabled(t *testing.T) {
	rec := &RecordingRenderer[*Node]{}
	opts := flatOptions()
	opts.Labels = false
	w, err := New[*Node](leaf("only", 5), DefaultAdapter{}, opts)
	if err != nil {
		t.Fatal(err)
	}
	w.Draw(Rect{W: 50, H: 50}, rec)

	for _, call := range rec.Calls {
		if call.Op == "label" {
			t.Error("label drawn with Labels disabled")
		}
	}
}

func TestLayoutTruncatesTinyRects(t *testing.T) {
	// Heavy padding in a small rect: children cannot fit and are skipped,
	// but the parent entry itself survives for navigation.
	root := &Node{Name: "root", Children: []*Node{leaf("a", 1)}}
	opts := flatOptions()
	opts.Padding = 10
	w := mustWidget(t, root, opts)
	w.Draw(Rect{W: 25, H: 25}, NopRenderer[*Node]{})

	hm := w.HotMap()
	if len(hm) != 1 {
		t.Fatal("root entry missing")
	}
	if len(hm[0].Children) != 0 {
		t.Errorf("children should be truncated below the padding threshold")
	}
}
