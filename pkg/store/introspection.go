package store

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string `json:"repository_type"`
	DocType        string `json:"doc_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}
	return ServiceState{
		RepositoryType: repoType,
		DocType:        s.docType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "reference-store"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
