// Package slug derives URL-safe identifiers from article and category titles.
// Generation is deterministic and side-effect free; uniqueness is enforced by
// the persistence layer, not here.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and removes the combining
// diacritical marks, so "é" folds to "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate converts a title into a lowercase hyphenated slug.
// The result always matches ^[a-z0-9-]*$. An empty or unusable title
// produces an empty string; callers must treat that as a validation
// failure rather than persisting an empty unique key.
func Generate(title string) string {
	lowered := strings.ToLower(title)

	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Fold failures leave the input untouched; the filter below
		// still guarantees a well-formed result.
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '-':
			b.WriteByte('-')
		}
	}

	return strings.Trim(collapseHyphens(b.String()), "-")
}

// WithSuffix appends a disambiguating token to a slug, used when a
// uniqueness conflict must be retried or when duplicating an article.
func WithSuffix(s, token string) string {
	if s == "" {
		return token
	}
	return s + "-" + token
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
