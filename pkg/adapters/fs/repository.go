// Package fs implements core.Repository over a local directory tree,
// optionally versioned with git.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/citemark/pkg/core"
	"github.com/aretw0/citemark/pkg/git"
)

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	AutoInit  bool // create the root directory (and git repo) if missing
	Gitless   bool // disable git versioning
	MustExist bool // fail Initialize when the root directory is missing
	ReadOnly  bool // reject writes with core.ErrReadOnly
	Logger    *slog.Logger
}

// Repository implements core.Repository using the filesystem and,
// unless configured gitless, a git work tree.
type Repository struct {
	Path   string
	git    *git.Client
	config Config
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	return &Repository{
		Path:   config.Path,
		git:    git.NewClient(config.Path, config.Logger),
		config: config,
	}
}

// Initialize ensures the tree root exists and, when versioning is enabled,
// that it is a git repository.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("reference tree does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("reference tree path is not a directory: %s", r.Path)
		}
	} else if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create reference tree: %w", err)
	}

	if r.config.Gitless {
		return nil
	}

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if !r.git.IsRepo() {
		if !r.config.AutoInit {
			return fmt.Errorf("path is not a git repository: %s", r.Path)
		}
		if err := r.git.Init(); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
	}
	return nil
}

// Exists reports whether a file is present at the tree-relative path.
func (r *Repository) Exists(ctx context.Context, path string) bool {
	info, err := os.Stat(filepath.Join(r.Path, filepath.FromSlash(path)))
	return err == nil && !info.IsDir()
}

// Read returns the raw content of the file at the tree-relative path.
func (r *Repository) Read(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Path, filepath.FromSlash(path)))
}

// Write persists data at the tree-relative path, creating parent directories
// as needed. The write itself is atomic (temp file + rename). When versioning
// is enabled the file is staged and committed, using the change reason from
// the context if one was provided.
func (r *Repository) Write(ctx context.Context, path string, data []byte) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	fullPath := filepath.Join(r.Path, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("wrote record", "path", path, "bytes", len(data))
	}

	if r.config.Gitless {
		return nil
	}

	unlock, err := r.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Add(path); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}

	msg := "update " + path
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		msg = val
	}
	if err := r.git.Commit(msg); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// Glob returns the tree-relative paths matching the doublestar pattern.
// A pattern rooted in a directory that does not exist yet matches nothing.
func (r *Repository) Glob(ctx context.Context, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(r.Path), pattern)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		return nil, err
	}
	return matches, nil
}

var _ core.Repository = (*Repository)(nil)
