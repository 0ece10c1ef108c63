package model

import "sort"

// FSNode represents a file or directory in the scanned tree.
type FSNode struct {
	Path     string
	Name     string
	Size     int64 // direct size for files, aggregated total for dirs
	IsDir    bool
	Children []*FSNode
	Parent   *FSNode
}

// TotalSize returns the cached total size (call ComputeSizes first).
func (n *FSNode) TotalSize() int64 {
	return n.Size
}

// ComputeSizes calculates and caches sizes for the entire tree.
// Call this once after building/loading the tree.
func (n *FSNode) ComputeSizes() int64 {
	if !n.IsDir {
		return n.Size
	}
	var total int64
	for _, child := range n.Children {
		total += child.ComputeSizes()
	}
	n.Size = total
	return total
}

// Depth returns how many ancestors the node has.
func (n *FSNode) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// SortBySize sorts nodes by total size descending, then by name ascending.
func SortBySize(nodes []*FSNode) {
	sort.Slice(nodes, func(i, j int) bool {
		si, sj := nodes[i].TotalSize(), nodes[j].TotalSize()
		if si != sj {
			return si > sj
		}
		return nodes[i].Name < nodes[j].Name
	})
}
