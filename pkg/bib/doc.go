// Package bib implements the bibliographic normalization rules of citemark:
// personal name parsing, citation key synthesis, the derivation of storage
// paths from semantic identity, and the bundled biblatex vocabularies.
//
// Everything in this package is pure computation over in-memory records; the
// pkg/store package applies these rules against a backing reference tree.
package bib
