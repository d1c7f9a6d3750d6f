package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/citemark/pkg/bib"
	"github.com/aretw0/citemark/pkg/core"
)

// DefaultDocType is the directory associated binary documents are expected
// under when no other document type is configured.
const DefaultDocType = "doc"

// Service bundles the person and citation stores over a shared repository
// and drives the capture pipeline.
type Service struct {
	People    *People
	Citations *Citations

	repo    core.Repository
	log     *slog.Logger
	docType string
}

// NewService creates a Service over the given repository. docType selects
// the directory associated documents are expected under; empty means
// DefaultDocType.
func NewService(repo core.Repository, logger *slog.Logger, docType string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if docType == "" {
		docType = DefaultDocType
	}
	return &Service{
		People:    NewPeople(repo, logger),
		Citations: NewCitations(repo, logger),
		repo:      repo,
		log:       logger,
		docType:   docType,
	}
}

// DocType returns the configured document type directory.
func (s *Service) DocType() string {
	return s.docType
}

// Capture runs a raw imported record through normalization and persists the
// result: a stub record for every referenced person not yet stored, then the
// citation itself. It returns the synthesized citekey.
func (s *Service) Capture(ctx context.Context, record map[string]any, notes string) (string, error) {
	people, fields, citekey := bib.Normalize(record)
	if citekey == "" {
		return "", fmt.Errorf("record yields an empty citekey (no author, year or shorttitle)")
	}

	for _, pr := range people {
		person := bib.NormalizePerson(string(pr))
		if err := s.People.Save(ctx, person, ""); err != nil {
			return "", fmt.Errorf("failed to save person %q: %w", person.CleanName, err)
		}
	}

	if err := s.Citations.Save(ctx, citekey, fields, people, notes, s.docType); err != nil {
		return "", fmt.Errorf("failed to save citation %q: %w", citekey, err)
	}

	s.log.Info("captured citation", "citekey", citekey, "people", len(people))
	return citekey, nil
}
