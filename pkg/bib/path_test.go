package bib_test

import (
	"testing"

	"github.com/aretw0/citemark/pkg/bib"
)

func TestFileToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Spaces Become Dashes", "Smith, John", "Smith-John"},
		{"Quotes And Braces Stripped", `{"O'Brien"}, Flann`, "O-Brien-Flann"},
		{"Dash Runs Collapse", "a -- b", "a-b"},
		{"Leading Trailing Dashes Stripped", ", Smith,", "Smith"},
		{"Periods Collapse", "J.R.R. Tolkien", "J-R-R-Tolkien"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bib.FileToken(tt.input); got != tt.want {
				t.Errorf("FileToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPersonPath(t *testing.T) {
	t.Run("Shards On First Two Runes", func(t *testing.T) {
		if got, want := bib.PersonPath("Smith, John"), "author/Sm/Smith-John"; got != want {
			t.Errorf("PersonPath = %q, want %q", got, want)
		}
	})

	t.Run("Shards On Cleaned Token Not Raw Name", func(t *testing.T) {
		// The raw name starts with a multibyte rune; sharding must apply to
		// the cleaned token and count runes, not bytes.
		if got, want := bib.PersonPath("Émile Dupont"), "author/Ém/Émile-Dupont"; got != want {
			t.Errorf("PersonPath = %q, want %q", got, want)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		p := bib.NormalizePerson("van Helsing, Abraham")
		if bib.PersonPath(p.CleanName) != bib.PersonPath(p.CleanName) {
			t.Error("PersonPath is not deterministic")
		}
	})
}

func TestCitationPaths(t *testing.T) {
	t.Run("RefPath", func(t *testing.T) {
		if got, want := bib.CitationRefPath("smith2020myGreatPaper"), "sm/smith2020myGreatPaper"; got != want {
			t.Errorf("CitationRefPath = %q, want %q", got, want)
		}
	})

	t.Run("Leading Ordinal Stripped", func(t *testing.T) {
		if got, want := bib.CitationRefPath("12 smith2020"), "sm/smith2020"; got != want {
			t.Errorf("CitationRefPath = %q, want %q", got, want)
		}
	})

	t.Run("StoragePath", func(t *testing.T) {
		if got, want := bib.CitationPath("smith2020"), "cite/sm/smith2020"; got != want {
			t.Errorf("CitationPath = %q, want %q", got, want)
		}
	})

	t.Run("DocumentPath", func(t *testing.T) {
		if got, want := bib.DocumentPath("doc", "smith2020"), "doc/sm/smith2020.pdf"; got != want {
			t.Errorf("DocumentPath = %q, want %q", got, want)
		}
	})
}
