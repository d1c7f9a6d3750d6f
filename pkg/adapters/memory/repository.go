// Package memory implements core.Repository as an in-process map. It exists
// so the stores can be unit-tested deterministically without touching the
// real filesystem, and doubles as an injected index for embedding callers.
package memory

import (
	"context"
	"io/fs"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/citemark/pkg/core"
)

// Repository is an in-memory core.Repository. The zero value is not usable;
// construct with New.
type Repository struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{files: make(map[string][]byte)}
}

// Initialize is a no-op; the map is always ready.
func (r *Repository) Initialize(ctx context.Context) error {
	return nil
}

// Exists reports whether a file is present at path.
func (r *Repository) Exists(ctx context.Context, path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.files[path]
	return ok
}

// Read returns the content stored at path, or fs.ErrNotExist.
func (r *Repository) Read(ctx context.Context, path string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores data at path.
func (r *Repository) Write(ctx context.Context, path string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	r.files[path] = stored
	return nil
}

// Glob returns the sorted stored paths matching the doublestar pattern.
func (r *Repository) Glob(ctx context.Context, pattern string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []string
	for path := range r.files {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

var _ core.Repository = (*Repository)(nil)
