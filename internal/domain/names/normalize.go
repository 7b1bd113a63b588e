// Package names resolves scraped player names against NHL roster names.
//
// Matching is exact after normalization. Fuzzy or edit-distance matching
// is deliberately out of scope: a near miss must stay unmatched rather
// than attach a player's points to the wrong roster.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Generation suffixes stripped as trailing tokens only, so "Jr" inside a
// surname is untouched.
var suffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
}

// foldMarks decomposes to NFD, drops combining marks, and recomposes,
// turning e.g. "Nečas" into "Necas".
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize derives the canonical matching key for a display name.
// The same function builds index keys and lookup keys, so both sides of
// the join agree on: lower case, diacritics folded to ASCII, punctuation
// removed, whitespace collapsed, trailing generation suffixes dropped.
// A "Surname, Given" form is reordered to "Given Surname" first.
func Normalize(name string) string {
	name = reorderComma(name)

	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		// Transform only fails on malformed UTF-8; match on the raw bytes.
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case r == '.' || r == '\'' || r == '’' || r == '-':
			// Removed, not spaced: "Ekman-Larsson" and "EkmanLarsson"
			// must produce the same key.
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	parts := strings.Fields(b.String())
	for len(parts) > 1 {
		if _, ok := suffixes[parts[len(parts)-1]]; !ok {
			break
		}
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

// reorderComma rewrites "MacKinnon, Nathan" as "Nathan MacKinnon".
// Names without a comma pass through unchanged.
func reorderComma(name string) string {
	last, first, ok := strings.Cut(name, ",")
	if !ok {
		return name
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}
