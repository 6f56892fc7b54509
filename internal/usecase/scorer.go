package usecase

import (
	"math"
	"strings"
)

// Default gate thresholds, taken from the tuned search revision
const (
	defaultProductTypeThreshold = 0.7
	defaultOtherTermsThreshold  = 0.5
)

// Soft-match awards
const (
	exactMatchAward   = 1.0
	synonymMatchAward = 0.8 // related-term hit in the product-type gate
	partialMatchAward = 0.5 // mutual-substring hit in the other-terms gate
)

// minPartialWordLength is the length both words must exceed before a
// mutual-substring partial match is considered.
const minPartialWordLength = 3

// ScorerConfig holds the gate thresholds for the relevance scorer
type ScorerConfig struct {
	ProductTypeThreshold float64
	OtherTermsThreshold  float64
}

// Scorer computes the relevance of a catalog entry for a classified query.
// It is a pure function of its inputs: no shared state, no I/O, and
// identical results across repeated invocations.
type Scorer struct {
	productTypeThreshold float64
	otherTermsThreshold  float64
}

// NewScorer creates a scorer with the given thresholds, falling back to the
// defaults for zero or negative values.
func NewScorer(config ScorerConfig) *Scorer {
	productTypeThreshold := config.ProductTypeThreshold
	if productTypeThreshold <= 0 {
		productTypeThreshold = defaultProductTypeThreshold
	}

	otherTermsThreshold := config.OtherTermsThreshold
	if otherTermsThreshold <= 0 {
		otherTermsThreshold = defaultOtherTermsThreshold
	}

	return &Scorer{
		productTypeThreshold: productTypeThreshold,
		otherTermsThreshold:  otherTermsThreshold,
	}
}

// entryText is the match surface built from one catalog entry: the
// normalized description, brand, and code joined with spaces, plus its
// word list for exact-word checks.
type entryText struct {
	combined string
	words    []string
}

// gateResult is the outcome of one category gate: either a hard reject, or
// a (matched, required) contribution to the aggregate score.
type gateResult struct {
	matched  float64
	required float64
	reject   bool
}

// gate evaluates one category of query tokens against an entry
type gate func(entry entryText) gateResult

// Score evaluates every non-empty category group of the query against the
// entry and aggregates a bounded relevance score in [0,1]. Color and
// voltage are hard gates: if queried and absent, the score is 0 regardless
// of any other similarity. Product-type and other-term gates are soft,
// rejecting only below their ratio thresholds.
func (s *Scorer) Score(queryTokens []string, description, brand, code string) float64 {
	groups := classifyTokens(queryTokens)

	combined := NormalizeText(description) + " " + NormalizeText(brand) + " " + NormalizeText(code)
	entry := entryText{
		combined: combined,
		words:    strings.Fields(combined),
	}

	pipeline := []gate{
		func(e entryText) gateResult { return hardCategoryGate(groups.colors, e) },
		func(e entryText) gateResult { return hardCategoryGate(groups.voltages, e) },
		func(e entryText) gateResult { return s.productTypeGate(groups.productTypes, e) },
		func(e entryText) gateResult { return s.otherTermsGate(groups.other, e) },
	}

	var totalMatched, totalRequired float64
	for _, g := range pipeline {
		result := g(entry)
		if result.reject {
			return 0
		}
		totalMatched += result.matched
		totalRequired += result.required
	}

	if totalRequired == 0 {
		return 0
	}
	return math.Min(totalMatched/totalRequired, 1.0)
}

// hardCategoryGate implements the color and voltage gates: at least one
// queried token must occur as a substring of the entry text, else the entry
// is rejected outright.
func hardCategoryGate(tokens []string, entry entryText) gateResult {
	if len(tokens) == 0 {
		return gateResult{}
	}

	for _, token := range tokens {
		if strings.Contains(entry.combined, token) {
			return gateResult{matched: 1.0, required: 1.0}
		}
	}
	return gateResult{reject: true}
}

// productTypeGate awards full credit for a literal substring match and
// synonym credit when any related term of a canonical type is present. The
// award ratio must reach the threshold or the entry is rejected.
func (s *Scorer) productTypeGate(tokens []string, entry entryText) gateResult {
	if len(tokens) == 0 {
		return gateResult{}
	}

	var awards float64
	for _, token := range tokens {
		if strings.Contains(entry.combined, token) {
			awards += exactMatchAward
			continue
		}
		for _, synonym := range relatedTerms[token] {
			if strings.Contains(entry.combined, synonym) {
				awards += synonymMatchAward
				break
			}
		}
	}

	ratio := awards / float64(len(tokens))
	if ratio < s.productTypeThreshold {
		return gateResult{reject: true}
	}
	return gateResult{matched: ratio, required: 1.0}
}

// otherTermsGate awards full credit for an exact word match and partial
// credit when the token and an entry word (both longer than three
// characters) contain one another. The award ratio must reach the
// threshold or the entry is rejected.
func (s *Scorer) otherTermsGate(tokens []string, entry entryText) gateResult {
	if len(tokens) == 0 {
		return gateResult{}
	}

	var awards float64
	for _, token := range tokens {
		if containsWord(entry.words, token) {
			awards += exactMatchAward
			continue
		}
		if len(token) > minPartialWordLength {
			for _, word := range entry.words {
				if len(word) > minPartialWordLength &&
					(strings.Contains(word, token) || strings.Contains(token, word)) {
					awards += partialMatchAward
					break
				}
			}
		}
	}

	ratio := awards / float64(len(tokens))
	if ratio < s.otherTermsThreshold {
		return gateResult{reject: true}
	}
	return gateResult{matched: ratio, required: 1.0}
}

// containsWord reports whether token appears as an exact element of words
func containsWord(words []string, token string) bool {
	for _, word := range words {
		if word == token {
			return true
		}
	}
	return false
}
