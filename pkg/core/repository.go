package core

import "context"

// Repository defines the contract for the backing reference tree.
// Paths are slash-separated and relative to the tree root
// (e.g. "author/Sm/Smith-John.md" or "cite/sm/smith2020myGreatPaper.md").
// Adhering to this interface keeps the stores independent of the underlying
// storage mechanism (filesystem, in-memory index, etc).
type Repository interface {
	// Exists reports whether a file is present at path.
	Exists(ctx context.Context, path string) bool

	// Read returns the raw content of the file at path.
	// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist).
	Read(ctx context.Context, path string) ([]byte, error)

	// Write persists data at path, creating parent directories as needed.
	Write(ctx context.Context, path string, data []byte) error

	// Glob returns the paths matching the given doublestar pattern,
	// relative to the tree root.
	Glob(ctx context.Context, pattern string) ([]string, error)

	// Initialize ensures the underlying storage is ready
	// (e.g. create the root directory, git init).
	Initialize(ctx context.Context) error
}

type contextKey string

// ChangeReasonKey is the context key for passing specific change reasons
// (commit messages) during Write operations on versioned repositories.
const ChangeReasonKey contextKey = "change_reason"
