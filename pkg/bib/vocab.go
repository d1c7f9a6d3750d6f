package bib

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed resources/biblatexTypes.yaml
var rawEntryTypes []byte

//go:embed resources/biblatexFields.yaml
var rawFields []byte

// EntryType describes a biblatex entry type from the bundled vocabulary.
type EntryType struct {
	Comment        string   `yaml:"comment"`
	RequiredFields []string `yaml:"requiredFields"`
}

// Field describes the semantics of a known biblatex field.
type Field struct {
	Kind    string `yaml:"kind"`
	Comment string `yaml:"comment"`
}

var (
	vocabOnce  sync.Once
	entryTypes map[string]EntryType
	fields     map[string]Field
)

func loadVocab() {
	if err := yaml.Unmarshal(rawEntryTypes, &entryTypes); err != nil {
		panic(fmt.Sprintf("bib: bundled entry-type vocabulary is invalid: %v", err))
	}
	if err := yaml.Unmarshal(rawFields, &fields); err != nil {
		panic(fmt.Sprintf("bib: bundled field vocabulary is invalid: %v", err))
	}
}

// EntryTypes returns the bundled entry-type vocabulary, keyed by type name.
// The map is loaded once per process and must be treated as read-only.
func EntryTypes() map[string]EntryType {
	vocabOnce.Do(loadVocab)
	return entryTypes
}

// Fields returns the bundled field vocabulary, keyed by field name.
// The map is loaded once per process and must be treated as read-only.
func Fields() map[string]Field {
	vocabOnce.Do(loadVocab)
	return fields
}
