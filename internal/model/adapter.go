package model

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/termim/qsquaremap/pkg/squaremap"
)

// MapAdapter adapts *FSNode trees to the squaremap API. Directories are
// sized by their aggregated total; Overall reports the directory's own
// total, so when children account for less (permission errors, skipped
// entries) the difference shows up as empty space.
type MapAdapter struct{}

func (MapAdapter) Children(node *FSNode) []*FSNode {
	return node.Children
}

func (MapAdapter) Value(node, parent *FSNode) float64 {
	return float64(node.TotalSize())
}

func (a MapAdapter) ChildrenSum(children []*FSNode, parent *FSNode) float64 {
	var total float64
	for _, child := range children {
		total += a.Value(child, parent)
	}
	return total
}

func (MapAdapter) Overall(node *FSNode) float64 {
	if !node.IsDir {
		return 0
	}
	return float64(node.TotalSize())
}

func (a MapAdapter) Empty(node *FSNode) float64 {
	return squaremap.EmptyFraction[*FSNode](a, node)
}

func (MapAdapter) Label(node *FSNode) string {
	return node.Name
}

var _ squaremap.Adapter[*FSNode] = MapAdapter{}

// Kind classifies a file by its detected media type, for display in the
// status bar. Directories report "directory"; detection failures fall back
// to "file". Detection reads the file, so call it on selection, not per
// frame.
func Kind(node *FSNode) string {
	if node == nil {
		return ""
	}
	if node.IsDir {
		return "directory"
	}
	mtype, err := mimetype.DetectFile(node.Path)
	if err != nil {
		return "file"
	}
	return mtype.String()
}
