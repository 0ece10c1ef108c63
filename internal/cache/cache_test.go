package cache

import (
	"testing"

	"github.com/termim/qsquaremap/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := New(t.TempDir())

	root := &model.FSNode{
		Path: "/data", Name: "data", IsDir: true,
		Children: []*model.FSNode{
			{Path: "/data/a.bin", Name: "a.bin", Size: 1024},
			{Path: "/data/sub", Name: "sub", IsDir: true, Children: []*model.FSNode{
				{Path: "/data/sub/b.bin", Name: "b.bin", Size: 2048},
			}},
		},
	}
	root.ComputeSizes()

	if err := c.Save("/data", root); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := c.Load("/data")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.TotalSize() != root.TotalSize() {
		t.Errorf("size = %d, want %d", loaded.TotalSize(), root.TotalSize())
	}
	if len(loaded.Children) != 2 {
		t.Fatalf("children = %d", len(loaded.Children))
	}

	// Parent links are rebuilt on load.
	sub := loaded.Children[1]
	if sub.Parent != loaded {
		t.Error("parent link missing after load")
	}
	if sub.Children[0].Parent != sub {
		t.Error("nested parent link missing")
	}
}

func TestLoadMissing(t *testing.T) {
	c := New(t.TempDir())
	if _, err := c.Load("/nope"); err == nil {
		t.Error("loading a missing cache should fail")
	}
}

func TestSaveReplacesPrevious(t *testing.T) {
	c := New(t.TempDir())

	first := &model.FSNode{Path: "/p", Name: "p", IsDir: true, Size: 1}
	second := &model.FSNode{Path: "/p", Name: "p", IsDir: true, Size: 2}

	if err := c.Save("/p", first); err != nil {
		t.Fatal(err)
	}
	if err := c.Save("/p", second); err != nil {
		t.Fatal(err)
	}

	loaded, err := c.Load("/p")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Size != 2 {
		t.Errorf("loaded size = %d, want the replacement", loaded.Size)
	}
}
