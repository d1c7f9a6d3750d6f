package citemark

import (
	"context"
	"log/slog"

	"github.com/aretw0/citemark/pkg/adapters/fs"
	"github.com/aretw0/citemark/pkg/core"
	"github.com/aretw0/citemark/pkg/store"
)

// Version exposes the version of the library.
const Version = "0.2.0"

// options holds the internal configuration for the citemark service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	docType    string
	autoInit   bool
	gitless    bool
	mustExist  bool
	readOnly   bool
}

// Option defines a functional option for configuring citemark.
type Option func(*options)

// WithAutoInit enables automatic initialization of the reference tree
// (creates the directory and, with versioning on, runs git init).
func WithAutoInit(auto bool) Option {
	return func(o *options) { o.autoInit = auto }
}

// WithVersioning enables or disables git versioning of the tree.
// Versioning is disabled by default; the store is purely file-based then.
func WithVersioning(enabled bool) Option {
	return func(o *options) { o.gitless = !enabled }
}

// WithMustExist requires the reference tree directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) { o.mustExist = must }
}

// WithReadOnly rejects all writes with core.ErrReadOnly.
func WithReadOnly(readOnly bool) Option {
	return func(o *options) { o.readOnly = readOnly }
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRepository injects a custom backing store (e.g. the memory adapter),
// bypassing the default filesystem adapter.
func WithRepository(repo core.Repository) Option {
	return func(o *options) { o.repository = repo }
}

// WithDocType selects the directory associated binary documents are expected
// under (default "doc").
func WithDocType(docType string) Option {
	return func(o *options) { o.docType = docType }
}

// New creates a citemark Service rooted at path.
func New(path string, opts ...Option) (*store.Service, error) {
	o := &options{gitless: true}
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:      path,
			AutoInit:  o.autoInit,
			Gitless:   o.gitless,
			MustExist: o.mustExist,
			ReadOnly:  o.readOnly,
			Logger:    o.logger,
		})
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store.NewService(repo, o.logger, o.docType), nil
}
