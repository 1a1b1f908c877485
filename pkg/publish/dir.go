package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirTarget writes published files into a local directory tree.
type DirTarget struct {
	root string
}

// NewDirTarget creates the root directory if needed and returns a target
// writing beneath it.
func NewDirTarget(root string) (*DirTarget, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &DirTarget{root: root}, nil
}

// Root returns the directory files are written into.
func (t *DirTarget) Root() string {
	return t.root
}

// Put writes data to path below the root, creating parent directories as
// needed.
func (t *DirTarget) Put(ctx context.Context, path string, data []byte, contentType string) error {
	full := filepath.Join(t.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
