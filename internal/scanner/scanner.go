package scanner

import (
	"context"

	"github.com/termim/qsquaremap/internal/model"
)

// Progress reports scanning progress.
type Progress struct {
	FilesScanned int64
	DirsScanned  int64
	BytesFound   int64
}

// Scanner builds the model tree the square map displays. The widget itself
// has no knowledge of where trees come from.
type Scanner interface {
	// Scan walks the given root path and returns a tree of nodes with
	// sizes already aggregated.
	Scan(ctx context.Context, root string) (*model.FSNode, error)

	// Progress returns a channel that receives progress updates while a
	// Scan is running. Closed when the scan finishes.
	Progress() <-chan Progress
}
