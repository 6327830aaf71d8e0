package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Normalizer defaults.
const (
	DefaultMinLength = 20
	DefaultMinTokens = 3
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// disallowedRegex matches every character outside the listing alphabet.
var disallowedRegex = regexp.MustCompile(`[^a-z0-9\s.,/$-]+`)

// delimiterRegex matches structural characters that mark chat metadata
// rather than listing text. Examples: "[10/2/24 9:01]", "price list:".
var delimiterRegex = regexp.MustCompile(`[\[\]:]`)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizerConfig holds the row shape thresholds.
type NormalizerConfig struct {
	MinLength int
	MinTokens int
}

// Normalizer cleans raw lines and decides whether they are listings at all.
type Normalizer struct {
	cfg NormalizerConfig
}

// NewNormalizer creates a Normalizer, filling zero thresholds with defaults.
func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.MinTokens <= 0 {
		cfg.MinTokens = DefaultMinTokens
	}
	return &Normalizer{cfg: cfg}
}

// Normalize lowercases raw, folds accents, drops characters outside
// [a-z0-9 whitespace . , / - $] and collapses whitespace. The second return
// value is RejectNone when the line is a listing candidate.
func (n *Normalizer) Normalize(raw string) (string, domain.RejectReason) {
	text := strings.ToLower(raw)

	if delimiterRegex.MatchString(text) {
		return "", domain.RejectDelimiter
	}

	if folded, _, err := transform.String(stripAccents, text); err == nil {
		text = folded
	}

	text = disallowedRegex.ReplaceAllString(text, "")
	text = collapseSpaces(text)

	if len(text) < n.cfg.MinLength {
		return "", domain.RejectTooShort
	}

	if len(strings.Fields(text)) < n.cfg.MinTokens {
		return "", domain.RejectTooFewTokens
	}

	return text, domain.RejectNone
}

// collapseSpaces replaces whitespace runs with one space and trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// cutSpan replaces s[start:end] with a single space and collapses whitespace.
func cutSpan(s string, start, end int) string {
	return collapseSpaces(s[:start] + " " + s[end:])
}
