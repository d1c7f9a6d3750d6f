package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/citemark/pkg/bib"
	"github.com/aretw0/citemark/pkg/core"
)

// abstractWidth is the column the stored abstract block is folded at.
const abstractWidth = 70

// Citations stores citation records under cite/<shard>/<citekey>.md.
type Citations struct {
	repo core.Repository
	log  *slog.Logger
}

// NewCitations creates a citation store over the given repository.
func NewCitations(repo core.Repository, logger *slog.Logger) *Citations {
	if logger == nil {
		logger = slog.Default()
	}
	return &Citations{repo: repo, log: logger}
}

// Exists reports whether a citation is already stored under the citekey.
func (c *Citations) Exists(ctx context.Context, citekey string) bool {
	return c.repo.Exists(ctx, bib.CitationPath(citekey)+".md")
}

// Save writes a citation record. The header carries title, entrytype,
// citekey, the derived storage and document paths, the folded abstract, one
// list per person role, and every remaining field in sorted key order.
// A field map without a title is rejected with core.ErrMissingTitle.
// Saving an existing citekey overwrites the stored record; the caller map is
// never mutated.
func (c *Citations) Save(ctx context.Context, citekey string, fields map[string]any, people []bib.PersonRole, notes, docType string) error {
	title, ok := fields["title"]
	if !ok {
		return core.ErrMissingTitle
	}

	// Fields written explicitly are skipped in the sorted pass below.
	skip := map[string]bool{
		"title":     true,
		"entrytype": true,
		"citekey":   true,
	}

	entrytype := ""
	if v, ok := fields["entrytype"]; ok {
		entrytype = fmt.Sprintf("%v", v)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: \"%v\"\n", title)
	b.WriteString("biblatex:\n")
	fmt.Fprintf(&b, "  title: \"%v\"\n", title)
	fmt.Fprintf(&b, "  entrytype: %s\n", entrytype)
	fmt.Fprintf(&b, "  citekey: %s\n", citekey)
	fmt.Fprintf(&b, "  citePath: %s.md\n", bib.CitationPath(citekey))
	fmt.Fprintf(&b, "  docType: %s\n", docType)
	fmt.Fprintf(&b, "  docPath: %s\n", bib.DocumentPath(docType, citekey))

	if abstract, ok := fields["abstract"]; ok {
		skip["abstract"] = true
		b.WriteString("  abstract: >\n")
		for _, line := range wrapWords(fmt.Sprintf("%v", abstract), abstractWidth) {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	for _, role := range roleOrder(people) {
		skip[role] = true
		fmt.Fprintf(&b, "  %s:\n", role)
		for _, pr := range people {
			if name, r := pr.Split(); r == role {
				fmt.Fprintf(&b, "    - %s\n", name)
			}
		}
	}

	extras := make([]string, 0, len(fields))
	for k := range fields {
		if !skip[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		writeField(&b, k, fields[k])
	}

	b.WriteString("---\n\n")
	if notes != "" {
		b.WriteString(notes)
		b.WriteString("\n")
	}

	recordPath := bib.CitationPath(citekey) + ".md"
	if c.repo.Exists(ctx, recordPath) {
		c.log.Debug("overwriting stored citation", "citekey", citekey)
	}
	return c.repo.Write(ctx, recordPath, []byte(b.String()))
}

// Load reads a citation back by citekey, returning the parsed header map and
// the free-form body. A missing record yields an empty map and body with no
// error; a stored file that does not split into exactly three frontmatter
// sections fails with core.ErrMalformedDocument.
func (c *Citations) Load(ctx context.Context, citekey string) (map[string]any, string, error) {
	data, err := c.repo.Read(ctx, bib.CitationPath(citekey)+".md")
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	parts := strings.Split(string(data), "---\n")
	if len(parts) != 3 {
		return nil, "", fmt.Errorf("%w: citation %s has %d sections, want 3", core.ErrMalformedDocument, citekey, len(parts))
	}

	header := map[string]any{}
	if strings.TrimSpace(parts[1]) == "" {
		return header, parts[2], nil
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &header); err != nil {
		return nil, "", fmt.Errorf("%w: citation %s: %v", core.ErrMalformedDocument, citekey, err)
	}
	return header, parts[2], nil
}

// Possible returns a sorted pick-list of stored citekeys sharing a
// 5-character prefix window with the partial key, always terminated by the
// "other" sentinel.
func (c *Citations) Possible(ctx context.Context, partial string) ([]string, error) {
	prefix := partial
	if runes := []rune(prefix); len(runes) > 5 {
		prefix = string(runes[:5])
	}

	matches, err := c.repo.Glob(ctx, "cite/*/*"+prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan for citekey %q: %w", partial, err)
	}

	seen := make(map[string]struct{}, len(matches))
	candidates := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		key := strings.TrimSuffix(path.Base(m), ".md")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, key)
	}
	sort.Strings(candidates)
	return append(candidates, "other"), nil
}

// writeField emits one generic header field. Sequences become nested list
// items; scalars are quoted when the field name contains "title" or the
// value contains a colon, which would otherwise change meaning in YAML.
func writeField(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case []any:
		if len(v) == 0 {
			fmt.Fprintf(b, "  %s: []\n", key)
			return
		}
		fmt.Fprintf(b, "  %s:\n", key)
		for _, item := range v {
			fmt.Fprintf(b, "    - %v\n", item)
		}
	case []string:
		if len(v) == 0 {
			fmt.Fprintf(b, "  %s: []\n", key)
			return
		}
		fmt.Fprintf(b, "  %s:\n", key)
		for _, item := range v {
			fmt.Fprintf(b, "    - %s\n", item)
		}
	default:
		s := fmt.Sprintf("%v", v)
		if strings.Contains(key, "title") || strings.Contains(s, ":") {
			fmt.Fprintf(b, "  %s: \"%s\"\n", key, s)
		} else {
			fmt.Fprintf(b, "  %s: %s\n", key, s)
		}
	}
}

// roleOrder returns the distinct roles of a person-role list in first-seen
// order.
func roleOrder(people []bib.PersonRole) []string {
	var order []string
	seen := make(map[string]bool)
	for _, pr := range people {
		_, role := pr.Split()
		if !seen[role] {
			seen[role] = true
			order = append(order, role)
		}
	}
	return order
}

// wrapWords folds text into lines of at most width columns without breaking
// words; a single overlong word keeps its own line.
func wrapWords(text string, width int) []string {
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
