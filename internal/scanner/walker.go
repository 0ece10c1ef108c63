package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/termim/qsquaremap/internal/model"
)

// Walker scans a directory tree in parallel with fastwalk and assembles the
// flat results into an FSNode tree.
type Walker struct {
	workers    int
	progressCh chan Progress
	progress   Progress
}

// NewWalker creates a parallel filesystem walker.
func NewWalker(workers int) *Walker {
	if workers < 1 {
		workers = 8
	}
	return &Walker{
		workers:    workers,
		progressCh: make(chan Progress, 64),
	}
}

// Progress returns the progress channel.
func (w *Walker) Progress() <-chan Progress {
	return w.progressCh
}

// entry is the flat record collected per path during the walk.
type entry struct {
	path  string
	name  string
	size  int64
	isDir bool
}

// Scan walks the filesystem under root and returns the assembled tree with
// directory sizes aggregated.
func (w *Walker) Scan(ctx context.Context, root string) (*model.FSNode, error) {
	defer close(w.progressCh)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	rootInfo := getPlatformRootInfo(absRoot)

	var (
		mu      sync.Mutex
		entries []entry
	)
	// Inode bookkeeping so hard links and firmlinked directories are
	// counted once.
	var seen sync.Map

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: w.workers,
	}

	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // unreadable entries simply don't contribute
		}
		if path == absRoot {
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, d, rootInfo, &seen) {
				return fs.SkipDir
			}
			atomic.AddInt64(&w.progress.DirsScanned, 1)
		}

		var size int64
		if !d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			size = getFileSize(info, &seen)
			if size < 0 {
				return nil // hard link already counted
			}
			atomic.AddInt64(&w.progress.FilesScanned, 1)
			atomic.AddInt64(&w.progress.BytesFound, size)
		}

		mu.Lock()
		entries = append(entries, entry{path: path, name: d.Name(), size: size, isDir: d.IsDir()})
		mu.Unlock()

		w.reportProgress()
		return nil
	})

	if walkErr != nil && walkErr != ctx.Err() {
		return nil, walkErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rootNode := buildTree(absRoot, entries)
	rootNode.ComputeSizes()
	sortTree(rootNode)
	return rootNode, nil
}

// sortTree orders every directory's children largest first, so map and
// status displays are stable across rescans.
func sortTree(n *model.FSNode) {
	model.SortBySize(n.Children)
	for _, child := range n.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// reportProgress publishes a snapshot without ever blocking the walk.
func (w *Walker) reportProgress() {
	snapshot := Progress{
		FilesScanned: atomic.LoadInt64(&w.progress.FilesScanned),
		DirsScanned:  atomic.LoadInt64(&w.progress.DirsScanned),
		BytesFound:   atomic.LoadInt64(&w.progress.BytesFound),
	}
	select {
	case w.progressCh <- snapshot:
	default:
	}
}

// buildTree links the flat entries into a tree rooted at rootPath.
func buildTree(rootPath string, entries []entry) *model.FSNode {
	nodes := make(map[string]*model.FSNode, len(entries)+1)

	root := &model.FSNode{
		Path:  rootPath,
		Name:  filepath.Base(rootPath),
		IsDir: true,
	}
	nodes[rootPath] = root

	for _, e := range entries {
		nodes[e.path] = &model.FSNode{
			Path:  e.path,
			Name:  e.name,
			Size:  e.size,
			IsDir: e.isDir,
		}
	}

	for _, e := range entries {
		node := nodes[e.path]
		if parent, ok := nodes[filepath.Dir(e.path)]; ok {
			node.Parent = parent
			parent.Children = append(parent.Children, node)
		}
	}

	return root
}

var _ Scanner = (*Walker)(nil)
