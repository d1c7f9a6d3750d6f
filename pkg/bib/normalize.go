package bib

import (
	"fmt"
	"strings"
	"unicode"
)

// roleFields lists the raw record fields recognized as person-role lists,
// in extraction order: authors first, then editors, then translators.
var roleFields = []string{"author", "editor", "translator"}

// Normalize converts a raw imported record into its canonical form. It
// returns the ordered role-tagged person list, a canonical field map, and the
// synthesized citation key. The input record is never mutated; the canonical
// map is a derived copy with role lists and the year-date pseudo-field
// consumed, required-field placeholders inserted, and url coerced to a list.
//
// Unknown entry types pass through without required-field enforcement.
// Missing author/year/shorttitle degrade the citekey rather than fail;
// handling a partial or empty key is the caller's responsibility.
func Normalize(record map[string]any) ([]PersonRole, map[string]any, string) {
	fields := make(map[string]any, len(record))
	for k, v := range record {
		fields[k] = v
	}

	var people []PersonRole
	for _, role := range roleFields {
		people = append(people, extractPeople(fields, role)...)
	}

	entryType, _ := fields["entrytype"].(string)
	if et, ok := EntryTypes()[entryType]; ok {
		for _, f := range et.RequiredFields {
			if _, present := fields[f]; !present {
				fields[f] = ""
			}
		}
	}

	// The citekey reads year from the raw record: year-date expansion below
	// must not influence key synthesis.
	citekey := synthesizeCitekey(people, record)

	applyYearDate(fields)

	switch fields["url"].(type) {
	case []any, []string:
	case nil:
		fields["url"] = []any{}
	default:
		fields["url"] = []any{fields["url"]}
	}

	return people, fields, citekey
}

// extractPeople removes a role-list field from the map and returns its
// entries tagged with the role. A bare string is treated as a one-element
// list; order within the role is preserved.
func extractPeople(fields map[string]any, role string) []PersonRole {
	raw, ok := fields[role]
	if !ok {
		return nil
	}
	delete(fields, role)

	var names []string
	switch v := raw.(type) {
	case string:
		names = []string{v}
	case []string:
		names = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	}

	people := make([]PersonRole, 0, len(names))
	for _, name := range names {
		people = append(people, MakePersonRole(name, role))
	}
	return people
}

// synthesizeCitekey builds the deterministic citation key: author surnames in
// order with spaces removed, the year value as given, and a lower-first
// camel-cased rendering of the short title; the first rune of the whole key
// is lowercased. The key is not guaranteed globally unique.
func synthesizeCitekey(people []PersonRole, record map[string]any) string {
	var b strings.Builder
	for _, pr := range people {
		name, role := pr.Split()
		if role != "author" {
			continue
		}
		surname, _, _ := strings.Cut(name, ",")
		b.WriteString(surname)
	}
	key := strings.ReplaceAll(b.String(), " ", "")

	if year, ok := record["year"]; ok {
		key += fmt.Sprintf("%v", year)
	}
	if shortTitle, ok := record["shorttitle"].(string); ok {
		key += lowerFirst(toCamelCase(strings.TrimSpace(shortTitle)))
	}
	return lowerFirst(key)
}

// applyYearDate consumes the year-date pseudo-field. A dash marks a date
// range: the full value (trimmed of slashes) becomes date and the first
// segment becomes year, each only when not already set. Otherwise the whole
// value becomes year. Whenever year-date was present, year is coerced to a
// string.
func applyYearDate(fields map[string]any) {
	raw, ok := fields["year-date"]
	if !ok {
		return
	}
	delete(fields, "year-date")

	yearDate := fmt.Sprintf("%v", raw)
	if raw != nil && yearDate != "" {
		if strings.Contains(yearDate, "-") {
			if _, present := fields["date"]; !present {
				fields["date"] = strings.Trim(yearDate, "/")
			}
			if _, present := fields["year"]; !present {
				yearPart, _, _ := strings.Cut(yearDate, "-")
				fields["year"] = yearPart
			}
		} else if _, present := fields["year"]; !present {
			fields["year"] = yearDate
		}
	}

	if year, present := fields["year"]; present {
		fields["year"] = fmt.Sprintf("%v", year)
	}
}

// toCamelCase joins the words of a title into a single camel-cased token.
// Hyphens and underscores count as word breaks; the first word is kept
// verbatim and subsequent words are capitalized.
func toCamelCase(text string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(text))
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
