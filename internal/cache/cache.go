// Package cache persists scan results so reopening a directory does not
// force a full rescan.
package cache

import (
	"compress/gzip"
	"crypto/sha1"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/termim/qsquaremap/internal/model"
)

// Cache saves and loads scan results under a directory.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// DefaultDir returns the default cache directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qsquaremap"
	}
	return filepath.Join(home, ".qsquaremap", "cache")
}

// flatNode is the gob representation; parent pointers would make the node
// graph cyclic, so they are rebuilt on load.
type flatNode struct {
	Path     string
	Name     string
	Size     int64
	IsDir    bool
	Children []flatNode
}

func flatten(n *model.FSNode) flatNode {
	f := flatNode{Path: n.Path, Name: n.Name, Size: n.Size, IsDir: n.IsDir}
	for _, child := range n.Children {
		f.Children = append(f.Children, flatten(child))
	}
	return f
}

func (f flatNode) restore(parent *model.FSNode) *model.FSNode {
	n := &model.FSNode{Path: f.Path, Name: f.Name, Size: f.Size, IsDir: f.IsDir, Parent: parent}
	for _, child := range f.Children {
		n.Children = append(n.Children, child.restore(n))
	}
	return n
}

// key derives a stable filename for a scanned root path.
func key(root string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(root)))
}

func (c *Cache) file(root string) string {
	return filepath.Join(c.dir, key(root)+".gob.gz")
}

// Save stores the scan result for the given root path, replacing any
// previous one.
func (c *Cache) Save(root string, tree *model.FSNode) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	file, err := os.Create(c.file(root))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	defer gz.Close()

	if err := gob.NewEncoder(gz).Encode(flatten(tree)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Load returns the cached scan for the given root path.
func (c *Cache) Load(root string) (*model.FSNode, error) {
	file, err := os.Open(c.file(root))
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer gz.Close()

	var flat flatNode
	if err := gob.NewDecoder(gz).Decode(&flat); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return flat.restore(nil), nil
}

// Timestamp returns when the cache for root was written.
func (c *Cache) Timestamp(root string) (time.Time, error) {
	info, err := os.Stat(c.file(root))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
