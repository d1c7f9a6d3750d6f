package citemark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/citemark"
	"github.com/aretw0/citemark/pkg/adapters/memory"
	"github.com/aretw0/citemark/pkg/bib"
)

func TestCaptureRoundTrip(t *testing.T) {
	service, err := citemark.New(t.TempDir(), citemark.WithAutoInit(true))
	require.NoError(t, err)

	ctx := context.Background()
	record := map[string]any{
		"entrytype":  "article",
		"author":     []any{"Smith, John"},
		"year":       "2020",
		"shorttitle": "My Great Paper",
		"title":      "My Great Paper on Things",
	}

	citekey, err := service.Capture(ctx, record, "Capture of a classic.")
	require.NoError(t, err)
	assert.Equal(t, "smith2020myGreatPaper", citekey)

	header, body, err := service.Citations.Load(ctx, citekey)
	require.NoError(t, err)
	assert.Contains(t, body, "Capture of a classic.")
	assert.Equal(t, "My Great Paper on Things", header["title"])

	// The referenced author was stored as a stub record.
	person, _, err := service.People.Load(ctx, "Smith, John")
	require.NoError(t, err)
	assert.Equal(t, "Smith", person.Surname)
	assert.Equal(t, "John", person.Firstname)

	candidates, err := service.People.CandidatesForSurname(ctx, "Smith")
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith-John", "new"}, candidates)
}

func TestCaptureRejectsEmptyCitekey(t *testing.T) {
	service, err := citemark.New("", citemark.WithRepository(memory.New()))
	require.NoError(t, err)

	_, err = service.Capture(context.Background(), map[string]any{
		"entrytype": "mixtape",
		"title":     "Untraceable",
	}, "")
	assert.Error(t, err)
}

func TestInjectedRepository(t *testing.T) {
	repo := memory.New()
	service, err := citemark.New("", citemark.WithRepository(repo), citemark.WithDocType("pdf"))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = service.Capture(ctx, map[string]any{
		"entrytype": "book",
		"author":    "Eco, Umberto",
		"year":      1980,
		"title":     "The Name of the Rose",
	}, "")
	require.NoError(t, err)

	assert.True(t, repo.Exists(ctx, "cite/ec/eco1980.md"))
	assert.True(t, repo.Exists(ctx, bib.PersonPath("Eco, Umberto")+".md"))

	header, _, err := service.Citations.Load(ctx, "eco1980")
	require.NoError(t, err)
	biblatex := header["biblatex"].(map[string]any)
	assert.Equal(t, "pdf", biblatex["docType"])
	assert.Equal(t, "pdf/ec/eco1980.pdf", biblatex["docPath"])
}
