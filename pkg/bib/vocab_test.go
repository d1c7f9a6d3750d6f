package bib_test

import (
	"testing"

	"github.com/aretw0/citemark/pkg/bib"
)

func TestEntryTypes(t *testing.T) {
	types := bib.EntryTypes()
	if len(types) == 0 {
		t.Fatal("expected bundled entry types to load")
	}

	article, ok := types["article"]
	if !ok {
		t.Fatal("expected an article entry type")
	}

	required := map[string]bool{}
	for _, f := range article.RequiredFields {
		required[f] = true
	}
	for _, f := range []string{"author", "title", "journaltitle", "year"} {
		if !required[f] {
			t.Errorf("article is missing required field %q", f)
		}
	}
}

func TestFields(t *testing.T) {
	fields := bib.Fields()
	if len(fields) == 0 {
		t.Fatal("expected bundled fields to load")
	}
	if fields["author"].Kind != "namelist" {
		t.Errorf("author field kind = %q, want namelist", fields["author"].Kind)
	}
	if fields["title"].Comment == "" {
		t.Error("title field has no comment")
	}
}
