// Package squaremap renders a weighted tree as nested proportional
// rectangles (a treemap) and supports navigating the result.
//
// The layout engine recursively partitions a rectangle among sibling nodes
// in proportion to their adapter-supplied values, emitting drawing commands
// to a Renderer and recording every drawn box in a HotMap. The hot map is
// the per-frame source of truth for hit-testing (FindNodeAtPosition) and
// keyboard navigation (FindNode, FirstChild, NextChild, ...). A Widget ties
// model, adapter, options and interaction state together and translates
// pointer and key events into highlight/select/activate changes.
//
// Two layout styles are available: the default linear style slices the
// largest sibling off one at a time, while SquareStyle bi-partitions large
// sibling sets by approximate value balance, producing squarer boxes.
//
// Everything is single-threaded: layout runs entirely within one Draw call
// and the hot map is rebuilt, never patched. Hosts delivering events from
// multiple goroutines must serialize them externally.
package squaremap
