// Package photos resolves submission photo references against the photo
// directory on disk.
package photos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned when a referenced photo does not exist on disk.
var ErrNotFound = errors.New("photo not found")

// Metadata is the filesystem metadata of one resolved photo.
type Metadata struct {
	Size    int64
	ModTime time.Time
}

// Resolver enriches photo references with filesystem metadata.
type Resolver interface {
	Resolve(path string) (Metadata, error)
}

type osResolver struct {
	root string
}

// NewResolver returns a Resolver that stats photos relative to root.
func NewResolver(root string) Resolver {
	return &osResolver{root: root}
}

func (r *osResolver) Resolve(path string) (Metadata, error) {
	info, err := os.Stat(filepath.Join(r.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Metadata{}, fmt.Errorf("failed to stat photo %s: %w", path, err)
	}
	if info.IsDir() {
		return Metadata{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return Metadata{Size: info.Size(), ModTime: info.ModTime()}, nil
}
