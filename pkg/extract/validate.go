package extract

import (
	"regexp"
	"strings"
	"unicode"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Validator defaults.
const (
	DefaultMinReferenceDigits = 4
	DefaultMaxReferenceLength = 50
)

// ValidatorConfig holds the minimum-content checks applied to every record.
type ValidatorConfig struct {
	MinReferenceDigits int
	MaxReferenceLength int

	// StopWords replaces the vocabulary stop words when non-empty.
	StopWords []string

	// RequirePrice drops records without a final amount.
	RequirePrice bool
	// RequireBrand drops records the catalog could not attribute.
	RequireBrand bool
}

// Validator cleans residual references and rejects records that do not look
// like real listings.
type Validator struct {
	cfg      ValidatorConfig
	stopRe   *regexp.Regexp
	punctual *regexp.Regexp
}

// NewValidator compiles the stop-word pattern. Zero thresholds take defaults.
func NewValidator(cfg ValidatorConfig, stopWords []string) (*Validator, error) {
	if cfg.MinReferenceDigits <= 0 {
		cfg.MinReferenceDigits = DefaultMinReferenceDigits
	}
	if cfg.MaxReferenceLength <= 0 {
		cfg.MaxReferenceLength = DefaultMaxReferenceLength
	}
	if len(cfg.StopWords) > 0 {
		stopWords = cleanList(cfg.StopWords)
	}

	v := &Validator{
		cfg:      cfg,
		punctual: regexp.MustCompile(`^[^a-z0-9]+$`),
	}

	if len(stopWords) > 0 {
		re, err := regexp.Compile(`\b(?:` + strings.Join(quoteAll(sortedKeywords(stopWords)), "|") + `)\b`)
		if err != nil {
			return nil, err
		}
		v.stopRe = re
	}

	return v, nil
}

// Clean strips stop words and punctuation-only tokens from a reference.
func (v *Validator) Clean(reference string) string {
	if v.stopRe != nil {
		reference = v.stopRe.ReplaceAllString(reference, " ")
	}

	fields := strings.Fields(reference)
	kept := fields[:0]
	for _, f := range fields {
		if v.punctual.MatchString(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Check returns the first failed check for rec, or RejectNone.
func (v *Validator) Check(rec *domain.FieldRecord) domain.RejectReason {
	ref := strings.TrimSpace(rec.Reference)

	switch {
	case ref == "":
		return domain.RejectEmptyReference
	case countDigits(ref) < v.cfg.MinReferenceDigits:
		return domain.RejectReferenceDigits
	case len(ref) > v.cfg.MaxReferenceLength:
		return domain.RejectReferenceLength
	case v.cfg.RequirePrice && rec.FinalAmount == nil:
		return domain.RejectNoPrice
	case v.cfg.RequireBrand && rec.Brand == "":
		return domain.RejectNoBrand
	}

	return domain.RejectNone
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
