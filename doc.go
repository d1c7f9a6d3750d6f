// Package citemark is the composition root for the citemark reference store.
//
// It connects the bibliographic domain logic (pkg/bib) with the storage
// adapters (pkg/adapters) behind the stores in pkg/store.
//
// Philosophy:
//
// Citemark treats a personal bibliography as a flat tree of Markdown files
// with structured frontmatter: one file per citation, one per person. Every
// record lives at a deterministic, content-derived path, so semantic identity
// and file-system layout stay in lockstep and the tree remains greppable,
// diffable and trivially portable.
//
// Features:
//
//   - Name normalization: "Surname, First" parsing with von-particle and
//     jr-suffix handling, initials expansion, canonical clean names.
//   - Deterministic citekeys: author surnames + year + camel-cased short
//     title, synthesized during capture.
//   - Sharded layout: author/<2 runes>/<token>.md and cite/<2 runes>/<key>.md
//     bound directory fan-out for large collections.
//   - Injectable storage: the default filesystem adapter (optionally git
//     versioned) can be swapped for the in-memory adapter via
//     core.Repository.
//   - Bundled biblatex vocabularies: entry types with required-field
//     completion, known-field semantics.
//
// Usage:
//
//	svc, err := citemark.New("./refs",
//		citemark.WithAutoInit(true),
//		citemark.WithLogger(logger),
//	)
//	if err != nil { ... }
//
//	citekey, err := svc.Capture(ctx, record, notes)
//	header, body, err := svc.Citations.Load(ctx, citekey)
package citemark
