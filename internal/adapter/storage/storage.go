// Package storage persists uploaded media assets and returns the public URL
// they will be served from.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS stores assets on the local filesystem under a root directory and maps
// them to URLs under a base URL. Suitable for single-node deployments; the
// interface consumed by transport handlers allows swapping in an object
// store without touching them.
type FS struct {
	root    string
	baseURL string
}

// NewFS creates a filesystem store rooted at dir. baseURL is prepended to
// stored paths when building public URLs.
func NewFS(dir, baseURL string) *FS {
	return &FS{
		root:    dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Store writes data under the given relative path and returns the public
// URL. Paths are cleaned and confined to the store root.
func (s *FS) Store(ctx context.Context, data []byte, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", fmt.Errorf("store: empty path")
	}
	dst := filepath.Join(s.root, clean)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("store %s: %w", path, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store %s: %w", path, err)
	}

	return s.baseURL + filepath.ToSlash(clean), nil
}
