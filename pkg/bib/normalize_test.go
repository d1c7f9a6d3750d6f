package bib_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/citemark/pkg/bib"
)

func TestNormalizeCitekey(t *testing.T) {
	t.Run("Author Year Shorttitle", func(t *testing.T) {
		people, _, citekey := bib.Normalize(map[string]any{
			"entrytype":  "article",
			"author":     []any{"Smith, John"},
			"year":       "2020",
			"shorttitle": "My Great Paper",
		})

		if citekey != "smith2020myGreatPaper" {
			t.Errorf("citekey = %q, want %q", citekey, "smith2020myGreatPaper")
		}
		want := []bib.PersonRole{"author:Smith, John"}
		if !reflect.DeepEqual(people, want) {
			t.Errorf("people = %v, want %v", people, want)
		}
	})

	t.Run("Multiple Authors Concatenated Without Spaces", func(t *testing.T) {
		_, _, citekey := bib.Normalize(map[string]any{
			"entrytype": "book",
			"author":    []any{"de la Cruz, Maria", "Smith, John"},
			"year":      1999,
		})
		if citekey != "delaCruzSmith1999" {
			t.Errorf("citekey = %q, want %q", citekey, "delaCruzSmith1999")
		}
	})

	t.Run("Editors Do Not Contribute", func(t *testing.T) {
		_, _, citekey := bib.Normalize(map[string]any{
			"entrytype": "collection",
			"editor":    "Jones, Sarah",
			"year":      "2021",
		})
		if citekey != "2021" {
			t.Errorf("citekey = %q, want %q", citekey, "2021")
		}
	})

	t.Run("Hyphenated Shorttitle Camel Cased", func(t *testing.T) {
		_, _, citekey := bib.Normalize(map[string]any{
			"author":     "Knuth, Donald",
			"shorttitle": "the-art_of Computer PROGRAMMING",
		})
		if citekey != "knuththeArtOfComputerProgramming" {
			t.Errorf("citekey = %q", citekey)
		}
	})

	t.Run("Degrades To Empty", func(t *testing.T) {
		_, _, citekey := bib.Normalize(map[string]any{"entrytype": "misc"})
		if citekey != "" {
			t.Errorf("citekey = %q, want empty", citekey)
		}
	})
}

func TestNormalizeRoles(t *testing.T) {
	people, fields, _ := bib.Normalize(map[string]any{
		"entrytype":  "anthology", // unknown type: no required-field refill
		"author":     []any{"Smith, John", "Jones, Sarah"},
		"editor":     "Brown, Tim",
		"translator": []any{"Eco, Umberto"},
	})

	want := []bib.PersonRole{
		"author:Smith, John",
		"author:Jones, Sarah",
		"editor:Brown, Tim",
		"translator:Eco, Umberto",
	}
	if !reflect.DeepEqual(people, want) {
		t.Errorf("people = %v, want %v", people, want)
	}

	for _, role := range []string{"author", "editor", "translator"} {
		if _, present := fields[role]; present {
			t.Errorf("role field %q not consumed from canonical map", role)
		}
	}

	t.Run("Known Type Refills Consumed Role As Placeholder", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{
			"entrytype": "article",
			"author":    "Smith, John",
		})
		if v, present := fields["author"]; !present || v != "" {
			t.Errorf("author placeholder = %v (present=%v), want empty string", v, present)
		}
	})
}

func TestNormalizeRequiredFields(t *testing.T) {
	t.Run("Known Entry Type Filled", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{
			"entrytype": "article",
			"author":    "Smith, John",
			"title":     "A Paper",
		})

		for _, f := range []string{"journaltitle", "year"} {
			v, present := fields[f]
			if !present {
				t.Errorf("required field %q not filled", f)
			} else if v != "" {
				t.Errorf("placeholder for %q = %v, want empty string", f, v)
			}
		}
		if fields["title"] != "A Paper" {
			t.Errorf("existing title was replaced: %v", fields["title"])
		}
	})

	t.Run("Unknown Entry Type Passes Through", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{
			"entrytype": "mixtape",
			"title":     "B Sides",
		})
		if _, present := fields["year"]; present {
			t.Error("unexpected required-field enforcement for unknown type")
		}
	})
}

func TestNormalizeURL(t *testing.T) {
	t.Run("Scalar Wrapped", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{"url": "https://example.com"})
		if !reflect.DeepEqual(fields["url"], []any{"https://example.com"}) {
			t.Errorf("url = %v", fields["url"])
		}
	})

	t.Run("List Kept", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{"url": []any{"a", "b"}})
		if !reflect.DeepEqual(fields["url"], []any{"a", "b"}) {
			t.Errorf("url = %v", fields["url"])
		}
	})

	t.Run("Absent Becomes Empty List", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{})
		if !reflect.DeepEqual(fields["url"], []any{}) {
			t.Errorf("url = %v", fields["url"])
		}
	})
}

func TestNormalizeYearDate(t *testing.T) {
	t.Run("Range Splits Into Date And Year", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{"year-date": "2020-2021/"})
		if fields["date"] != "2020-2021" {
			t.Errorf("date = %v", fields["date"])
		}
		if fields["year"] != "2020" {
			t.Errorf("year = %v", fields["year"])
		}
		if _, present := fields["year-date"]; present {
			t.Error("year-date not consumed")
		}
	})

	t.Run("Plain Value Becomes Year", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{"year-date": "1987"})
		if fields["year"] != "1987" {
			t.Errorf("year = %v", fields["year"])
		}
		if _, present := fields["date"]; present {
			t.Errorf("unexpected date field: %v", fields["date"])
		}
	})

	t.Run("Existing Year Wins But Is Stringified", func(t *testing.T) {
		_, fields, _ := bib.Normalize(map[string]any{"year-date": "1999", "year": 2001})
		if fields["year"] != "2001" {
			t.Errorf("year = %v (%T)", fields["year"], fields["year"])
		}
	})

	t.Run("Does Not Influence Citekey", func(t *testing.T) {
		_, _, citekey := bib.Normalize(map[string]any{
			"author":    "Smith, John",
			"year-date": "2020",
		})
		if citekey != "smith" {
			t.Errorf("citekey = %q, want %q", citekey, "smith")
		}
	})
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	record := map[string]any{
		"entrytype": "article",
		"author":    []any{"Smith, John"},
		"year-date": "2020",
		"url":       "https://example.com",
	}

	bib.Normalize(record)

	want := map[string]any{
		"entrytype": "article",
		"author":    []any{"Smith, John"},
		"year-date": "2020",
		"url":       "https://example.com",
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("input record was mutated: %v", record)
	}
}
