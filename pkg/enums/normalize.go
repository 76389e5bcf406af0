package enums

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// canonicalKey folds backend spellings ("Hors service", "hors-service", "RÉSERVÉE")
// onto the upper snake case used by the enum constants.
func canonicalKey(value string) string {
	folded, _, err := transform.String(foldAccents, strings.TrimSpace(value))
	if err != nil {
		folded = strings.TrimSpace(value)
	}
	folded = strings.ToUpper(folded)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return '_'
		}
		return r
	}, folded)
}

// normalize is the shared total mapping behind the NormalizeX helpers: exact and
// canonical matches win, then aliases, then the fallback member.
func normalize[T ~string](value string, valid []T, aliases map[string]T, fallback T) T {
	for _, candidate := range valid {
		if string(candidate) == value {
			return candidate
		}
	}
	key := canonicalKey(value)
	for _, candidate := range valid {
		if canonicalKey(string(candidate)) == key {
			return candidate
		}
	}
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return fallback
}

func isValid[T ~string](value T, valid []T) bool {
	for _, candidate := range valid {
		if candidate == value {
			return true
		}
	}
	return false
}
