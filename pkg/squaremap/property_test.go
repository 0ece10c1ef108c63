package squaremap

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func rectGen() *rapid.Generator[Rect] {
	return rapid.Custom(func(t *rapid.T) Rect {
		return Rect{
			X: rapid.Float64Range(-1e3, 1e3).Draw(t, "x"),
			Y: rapid.Float64Range(-1e3, 1e3).Draw(t, "y"),
			W: rapid.Float64Range(1, 1e4).Draw(t, "w"),
			H: rapid.Float64Range(1, 1e4).Draw(t, "h"),
		}
	})
}

func TestSplitBoxProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rectGen().Draw(t, "rect")
		f := rapid.Float64Range(0, 1).Draw(t, "fraction")

		head, tail, ok := SplitBox(f, r)
		longer := math.Max(r.W, r.H)
		if !ok {
			if f*longer != 0 {
				t.Fatalf("split refused with non-zero head dimension %v", f*longer)
			}
			return
		}

		if math.Abs(head.Area()+tail.Area()-r.Area()) > 1e-6*r.Area() {
			t.Fatalf("areas %v + %v != %v", head.Area(), tail.Area(), r.Area())
		}
		if rectsOverlap(head, tail) {
			t.Fatalf("head %+v overlaps tail %+v", head, tail)
		}
		for _, part := range []Rect{head, tail} {
			if !rectContains(r, part) {
				t.Fatalf("part %+v escapes %+v", part, r)
			}
		}
	})
}

func TestPartitionByValueProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(0, 1e6), 1, 50).Draw(t, "values")

		nodes := make([]Weighted[int], len(values))
		var total float64
		for i, v := range values {
			total += v
			nodes[i] = Weighted[int]{Value: v, Node: i}
		}
		// PartitionByValue expects ascending order.
		for i := 1; i < len(nodes); i++ {
			for j := i; j > 0 && nodes[j].Value < nodes[j-1].Value; j-- {
				nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
			}
		}

		headSum, head, tailSum, tail := PartitionByValue(total, nodes, 2.0)
		if len(head) == 0 {
			t.Fatal("head must never be empty for non-empty input")
		}
		if len(head)+len(tail) != len(nodes) {
			t.Fatalf("partition lost nodes: %d + %d != %d", len(head), len(tail), len(nodes))
		}
		if math.Abs(headSum+tailSum-total) > 1e-6 {
			t.Fatalf("headSum %v + tailSum %v != total %v", headSum, tailSum, total)
		}
	})
}

// randomTree draws a small weighted tree with distinct node names.
func randomTree(t *rapid.T, depth int, name string) *Node {
	n := &Node{Name: name}
	if depth > 0 && rapid.Bool().Draw(t, name+"/dir") {
		count := rapid.IntRange(1, 5).Draw(t, name+"/count")
		for i := 0; i < count; i++ {
			n.Children = append(n.Children, randomTree(t, depth-1, name+"/"+string(rune('a'+i))))
		}
	} else {
		n.Value = rapid.Float64Range(0, 1e6).Draw(t, name+"/value")
	}
	return n
}

// sumUp assigns internal nodes the sum of their leaves so the layout sees
// consistent weights at every level.
func sumUp(n *Node) float64 {
	if len(n.Children) == 0 {
		return n.Value
	}
	var total float64
	for _, c := range n.Children {
		total += sumUp(c)
	}
	n.Value = total
	return total
}

func TestLayoutContainmentProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		root := randomTree(rt, 3, "root")
		sumUp(root)

		opts := Options{
			Padding:     rapid.Float64Range(0, 4).Draw(rt, "padding"),
			Margin:      rapid.Float64Range(0, 4).Draw(rt, "margin"),
			Labels:      true,
			SquareStyle: rapid.Bool().Draw(rt, "square"),
		}
		w, err := New[*Node](root, DefaultAdapter{}, opts)
		if err != nil {
			rt.Fatal(err)
		}
		bounds := Rect{W: rapid.Float64Range(50, 500).Draw(rt, "w"), H: rapid.Float64Range(50, 500).Draw(rt, "h")}
		w.Draw(bounds, NopRenderer[*Node]{})

		var walk func(hm HotMap[*Node], outer Rect)
		walk = func(hm HotMap[*Node], outer Rect) {
			for i, entry := range hm {
				if !rectContains(outer, entry.Rect) {
					rt.Fatalf("entry %q rect %+v escapes %+v", entry.Node.Name, entry.Rect, outer)
				}
				for j := i + 1; j < len(hm); j++ {
					if rectsOverlap(entry.Rect, hm[j].Rect) {
						rt.Fatalf("siblings %q and %q overlap", entry.Node.Name, hm[j].Node.Name)
					}
				}
				walk(entry.Children, entry.Rect)
			}
		}
		walk(w.HotMap(), bounds)
	})
}

func TestFindNodeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		root := randomTree(rt, 3, "root")
		sumUp(root)

		w, err := New[*Node](root, DefaultAdapter{}, Options{Labels: true})
		if err != nil {
			rt.Fatal(err)
		}
		w.Draw(Rect{W: 300, H: 200}, NopRenderer[*Node]{})

		var verify func(hm HotMap[*Node])
		verify = func(hm HotMap[*Node]) {
			for _, entry := range hm {
				_, list, index, ok := FindNode(w.HotMap(), entry.Node)
				if !ok {
					rt.Fatalf("node %q drawn but not findable", entry.Node.Name)
				}
				if list[index].Node != entry.Node {
					rt.Fatalf("FindNode(%q) points at %q", entry.Node.Name, list[index].Node.Name)
				}
				verify(entry.Children)
			}
		}
		verify(w.HotMap())
	})
}
