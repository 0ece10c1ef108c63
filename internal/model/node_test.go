package model

import "testing"

func TestComputeSizes(t *testing.T) {
	child1 := &FSNode{Name: "file1.txt", Size: 100}
	child2 := &FSNode{Name: "file2.txt", Size: 200}
	sub := &FSNode{Name: "sub", IsDir: true, Children: []*FSNode{child2}}
	parent := &FSNode{
		Name:     "folder",
		IsDir:    true,
		Children: []*FSNode{child1, sub},
	}

	parent.ComputeSizes()

	if parent.TotalSize() != 300 {
		t.Errorf("expected 300, got %d", parent.TotalSize())
	}
	if sub.TotalSize() != 200 {
		t.Errorf("expected 200, got %d", sub.TotalSize())
	}
}

func TestSortBySize(t *testing.T) {
	nodes := []*FSNode{
		{Name: "small", Size: 100},
		{Name: "large", Size: 1000},
		{Name: "medium", Size: 500},
	}

	SortBySize(nodes)

	if nodes[0].Name != "large" || nodes[2].Name != "small" {
		t.Errorf("unexpected order: %s, %s, %s", nodes[0].Name, nodes[1].Name, nodes[2].Name)
	}
}

func TestDepth(t *testing.T) {
	root := &FSNode{Name: "root", IsDir: true}
	child := &FSNode{Name: "child", Parent: root}
	grand := &FSNode{Name: "grand", Parent: child}

	if d := root.Depth(); d != 0 {
		t.Errorf("root depth = %d", d)
	}
	if d := grand.Depth(); d != 2 {
		t.Errorf("grand depth = %d", d)
	}
}

func TestMapAdapterEmptySpace(t *testing.T) {
	a := MapAdapter{}

	// A directory whose children only account for 60 of its 100 bytes
	// reports the missing fraction as empty space.
	dir := &FSNode{Name: "dir", IsDir: true, Size: 100, Children: []*FSNode{
		{Name: "f", Size: 60},
	}}

	if got := a.Empty(dir); got != 0.4 {
		t.Errorf("Empty = %v, want 0.4", got)
	}

	// Files claim nothing beyond themselves.
	file := &FSNode{Name: "f", Size: 60}
	if got := a.Empty(file); got != 0 {
		t.Errorf("file Empty = %v, want 0", got)
	}
}
