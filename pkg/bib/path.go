package bib

import (
	"path"
	"regexp"
	"strings"
)

var (
	strangeChars  = regexp.MustCompile("['\",.{} \t\n\r]+")
	multiDash     = regexp.MustCompile(`-+`)
	leadingDigits = regexp.MustCompile(`^[0-9]+[ \t]+`)
)

// FileToken reduces a display name to a file-safe token: runs of quotes,
// commas, periods, braces and whitespace collapse to a single dash, dash runs
// collapse to one dash, and leading/trailing dashes are stripped.
func FileToken(name string) string {
	token := strangeChars.ReplaceAllString(name, "-")
	token = multiDash.ReplaceAllString(token, "-")
	return strings.Trim(token, "-")
}

// shard returns the first two runes of a token. Sharding on a short prefix
// bounds directory fan-out for large collections.
func shard(token string) string {
	runes := []rune(token)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// PersonPath derives the storage path (without extension) for a person from
// their clean name, e.g. "author/Sm/Smith-John".
func PersonPath(cleanName string) string {
	token := FileToken(cleanName)
	return path.Join("author", shard(token), token)
}

// CitationRefPath derives the sharded relative path (without extension) for a
// citekey, e.g. "sm/smith2020myGreatPaper". A leading "<digits><whitespace>"
// prefix is stripped, tolerating keys prepended with a disambiguating ordinal.
func CitationRefPath(citekey string) string {
	key := leadingDigits.ReplaceAllString(citekey, "")
	return path.Join(shard(key), key)
}

// CitationPath derives the metadata storage path (without extension) for a
// citekey, e.g. "cite/sm/smith2020myGreatPaper".
func CitationPath(citekey string) string {
	return path.Join("cite", CitationRefPath(citekey))
}

// DocumentPath derives the expected location of the binary document
// associated with a citation, e.g. "doc/sm/smith2020myGreatPaper.pdf".
// The document is expected there, never created by this package.
func DocumentPath(docType, citekey string) string {
	return path.Join(docType, CitationRefPath(citekey)) + ".pdf"
}
