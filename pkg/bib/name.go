package bib

import (
	"fmt"
	"regexp"
	"strings"
)

// Person is a single person record as stored under author/.
// Identity is the CleanName, from which the storage path derives.
type Person struct {
	CleanName string   `yaml:"cleanname"`
	Von       string   `yaml:"von"`
	Surname   string   `yaml:"surname"`
	Jr        string   `yaml:"jr"`
	Firstname string   `yaml:"firstname"`
	Email     string   `yaml:"email"`
	Institute string   `yaml:"institute"`
	URL       []string `yaml:"url"`
}

// RoleUnknown is the role assigned to an untagged person reference.
const RoleUnknown = "unknown"

// PersonRole carries a person reference annotated with its bibliographic
// role, encoded as "role:name" when the role is known and as a bare name
// otherwise. It is a transient encoding; no join table exists on disk.
type PersonRole string

// MakePersonRole tags a person name with a role.
func MakePersonRole(name, role string) PersonRole {
	return PersonRole(role + ":" + name)
}

// Split decomposes a role-tagged reference into its name and role.
// The role defaults to RoleUnknown when no tag is present.
func (pr PersonRole) Split() (name, role string) {
	name = string(pr)
	role = RoleUnknown
	if before, after, ok := strings.Cut(name, ":"); ok {
		role = strings.TrimSpace(before)
		name = strings.TrimSpace(after)
	}
	return name, role
}

// Name returns the bare person name of a role-tagged reference.
func (pr PersonRole) Name() string {
	name, _ := pr.Split()
	return name
}

// Role returns the role of a role-tagged reference.
func (pr PersonRole) Role() string {
	_, role := pr.Split()
	return role
}

// ExpandSurname splits a whitespace-separated surname token sequence into
// (surname, von, jr). With more than one token the first becomes the
// von-particle, the second the surname and the third (if present) the
// jr-suffix; remaining tokens are discarded. A single token is the surname.
//
// This positional heuristic does not understand multi-word particles such as
// "van der"; it is kept for compatibility with existing trees.
func ExpandSurname(raw string) (surname, von, jr string) {
	parts := strings.Fields(raw)
	switch {
	case len(parts) == 0:
		return "", "", ""
	case len(parts) == 1:
		return parts[0], "", ""
	}
	von = parts[0]
	surname = parts[1]
	if len(parts) > 2 {
		jr = parts[2]
	}
	return surname, von, jr
}

var (
	multiSpace       = regexp.MustCompile(`\s+`)
	spaceBeforeComma = regexp.MustCompile(`\s+,`)
)

// NormalizePerson parses a role-tagged "Surname, First" string into a Person.
// Internal periods in the given name are expanded to spaces (initials), and
// the canonical CleanName is assembled as "{von} {surname} {jr}, {firstname}"
// with whitespace runs collapsed and separators trimmed. CleanName is always
// re-derivable from the structural parts.
func NormalizePerson(roleTagged string) Person {
	name, _ := PersonRole(roleTagged).Split()

	surnamePart, firstPart, _ := strings.Cut(name, ",")
	surname, von, jr := ExpandSurname(strings.TrimSpace(surnamePart))
	firstname := strings.TrimSpace(strings.ReplaceAll(firstPart, ".", " "))
	firstname = multiSpace.ReplaceAllString(firstname, " ")

	clean := fmt.Sprintf(" %s %s %s, %s", von, surname, jr, firstname)
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = spaceBeforeComma.ReplaceAllString(clean, ",")
	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, ",")

	return Person{
		CleanName: clean,
		Von:       von,
		Surname:   surname,
		Jr:        jr,
		Firstname: firstname,
		URL:       []string{},
	}
}
