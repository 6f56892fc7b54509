package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonWordRegex        = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// turkishReplacer folds Turkish and extended Latin letters to their ASCII
// counterparts. Applied after lowercasing, so only lowercase forms appear.
var turkishReplacer = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
	"â", "a",
	"î", "i",
	"û", "u",
	"é", "e",
)

// minQueryTokenLength drops single letters from queries but keeps two-letter
// tokens, which matters for short voltage and color forms.
const minQueryTokenLength = 2

// NormalizeText canonicalizes free text into a comparable ASCII lowercase
// form: lowercase, fold Turkish letters, strip punctuation, collapse
// whitespace. It is total (empty in, empty out) and idempotent, and it is
// the single normalization routine shared by the ingestion and query paths.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	result := strings.ToLower(text)
	result = turkishReplacer.Replace(result)
	result = nonWordRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// TokenizeQuery normalizes a raw query and splits it into tokens, dropping
// tokens below the minimum length. A degenerate query (empty, whitespace,
// punctuation only) yields an empty token list.
func TokenizeQuery(query string) []string {
	var tokens []string
	for _, word := range strings.Fields(NormalizeText(query)) {
		if len(word) >= minQueryTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
