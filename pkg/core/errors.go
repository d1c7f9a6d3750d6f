package core

import "errors"

// Common errors. Precondition failures are named sentinels so callers can
// test for them with errors.Is instead of inspecting a bare boolean.
var (
	// ErrInvalidPerson indicates a person record without a usable clean name.
	ErrInvalidPerson = errors.New("person record has no clean name")

	// ErrMissingTitle indicates a citation save attempted without a title field.
	ErrMissingTitle = errors.New("citation has no title field")

	// ErrMalformedDocument indicates a stored file that does not have the
	// expected frontmatter/body structure.
	ErrMalformedDocument = errors.New("malformed document structure")

	// ErrReadOnly indicates a write attempted on a read-only repository.
	ErrReadOnly = errors.New("repository is in read-only mode")
)
