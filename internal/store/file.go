package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists each collection as a JSON file under a root directory.
type File struct {
	root string
}

// NewFile creates a file-backed Store rooted at the given directory,
// creating it if necessary.
func NewFile(root string) (*File, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root: %w", err)
	}
	return &File{root: root}, nil
}

func (f *File) path(collection string) string {
	return filepath.Join(f.root, collection+".json")
}

func (f *File) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(f.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

// Save writes the collection to a temp file and renames it into place so
// a crash mid-write never leaves a truncated collection behind.
func (f *File) Save(_ context.Context, collection string, data []byte) error {
	tmp, err := os.CreateTemp(f.root, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}

	return nil
}

func (f *File) Delete(_ context.Context, collection string) error {
	if err := os.Remove(f.path(collection)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
