// Package store persists person and citation records as Markdown files with
// structured frontmatter, addressed by the deterministic paths derived in
// pkg/bib. All access goes through the injected core.Repository.
//
// The on-disk mutation discipline is create-if-absent directory handling plus
// a check-then-act existence test for person records. Neither is synchronized:
// the store is safe for its single-user, single-process scope only, and any
// concurrent use needs external coordination.
package store
