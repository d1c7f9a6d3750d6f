package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/aretw0/citemark/pkg/bib"
	"github.com/aretw0/citemark/pkg/core"
)

// People stores person records under author/<shard>/<token>.md.
type People struct {
	repo core.Repository
	log  *slog.Logger
}

// NewPeople creates a person store over the given repository.
func NewPeople(repo core.Repository, logger *slog.Logger) *People {
	if logger == nil {
		logger = slog.Default()
	}
	return &People{repo: repo, log: logger}
}

// Exists reports whether a record for the person is already stored.
func (p *People) Exists(ctx context.Context, person bib.Person) bool {
	return p.repo.Exists(ctx, bib.PersonPath(person.CleanName)+".md")
}

// Save writes a person record with optional free-form notes. The first
// writer wins: when a file already exists at the derived path it is left
// untouched and Save still reports success. A person without a clean name
// is rejected with core.ErrInvalidPerson.
func (p *People) Save(ctx context.Context, person bib.Person, notes string) error {
	if person.CleanName == "" {
		return core.ErrInvalidPerson
	}

	recordPath := bib.PersonPath(person.CleanName) + ".md"
	if p.repo.Exists(ctx, recordPath) {
		p.log.Debug("person already stored, keeping existing record", "path", recordPath)
		return nil
	}

	return p.repo.Write(ctx, recordPath, renderPerson(person, notes))
}

// personHeader is the frontmatter shape of a stored person file.
type personHeader struct {
	Title    string     `yaml:"title"`
	Biblatex bib.Person `yaml:"biblatex"`
}

// Load reads a person record back by clean name. A missing record yields a
// zero Person and no error.
func (p *People) Load(ctx context.Context, cleanName string) (bib.Person, string, error) {
	data, err := p.repo.Read(ctx, bib.PersonPath(cleanName)+".md")
	if errors.Is(err, fs.ErrNotExist) {
		return bib.Person{}, "", nil
	}
	if err != nil {
		return bib.Person{}, "", err
	}

	var header personHeader
	body, err := frontmatter.Parse(bytes.NewReader(data), &header)
	if err != nil {
		return bib.Person{}, "", fmt.Errorf("%w: person %s: %v", core.ErrMalformedDocument, cleanName, err)
	}
	return header.Biblatex, string(body), nil
}

// CandidatesForSurname returns a sorted pick-list of stored people whose
// filename contains the given surname token, plus the "new" sentinel for
// interactive callers that want to create a fresh record.
func (p *People) CandidatesForSurname(ctx context.Context, surname string) ([]string, error) {
	surname, _, _ = bib.ExpandSurname(surname)

	matches, err := p.repo.Glob(ctx, "author/*/*"+surname+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan for surname %q: %w", surname, err)
	}

	candidates := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		candidates = append(candidates, strings.TrimSuffix(path.Base(m), ".md"))
	}
	candidates = append(candidates, "new")
	sort.Strings(candidates)
	return candidates, nil
}

// renderPerson lays out the stored form of a person: a YAML frontmatter
// header with the canonical name parts nested under "biblatex", followed by
// the free-form notes.
func renderPerson(person bib.Person, notes string) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", person.CleanName)
	b.WriteString("biblatex:\n")
	fmt.Fprintf(&b, "  cleanname: %s\n", person.CleanName)
	fmt.Fprintf(&b, "  von: %s\n", person.Von)
	fmt.Fprintf(&b, "  surname: %s\n", person.Surname)
	fmt.Fprintf(&b, "  jr: %s\n", person.Jr)
	fmt.Fprintf(&b, "  firstname: %s\n", person.Firstname)
	fmt.Fprintf(&b, "  email: %s\n", person.Email)
	fmt.Fprintf(&b, "  institute: %s\n", person.Institute)
	if len(person.URL) == 0 {
		b.WriteString("  url: []\n")
	} else {
		b.WriteString("  url:\n")
		for _, u := range person.URL {
			fmt.Fprintf(&b, "    - %s\n", u)
		}
	}
	b.WriteString("---\n\n")
	if notes != "" {
		b.WriteString(notes)
		b.WriteString("\n")
	}
	return []byte(b.String())
}
