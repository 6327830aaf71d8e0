package extract

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// Vocabulary errors.
var (
	ErrEmptyKeyword     = errors.New("empty keyword")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
	ErrEmptyAlias       = errors.New("empty alias target")
	ErrUnknownAlias     = errors.New("alias for unknown keyword")
	ErrBadPattern       = errors.New("invalid pattern")
	ErrNoCurrencies     = errors.New("no currencies defined")
	ErrBadCurrency      = errors.New("invalid currency entry")
)

// CurrencyToken is one recognized currency spelling and the code it maps to.
type CurrencyToken struct {
	Token string          `yaml:"token"`
	Code  domain.Currency `yaml:"code"`
}

// KeywordTable is the raw vocabulary for one multi-match field.
type KeywordTable struct {
	Keywords  []string          `yaml:"keywords"`
	Patterns  []string          `yaml:"patterns"`
	Modifiers []string          `yaml:"modifiers"`
	Aliases   map[string]string `yaml:"aliases"`
	Suppress  []string          `yaml:"suppress"`
}

// Vocabulary holds every keyword list and canonical mapping the pipeline uses.
// It is read once at startup and never mutated afterwards.
type Vocabulary struct {
	Currencies   []CurrencyToken `yaml:"currencies"`
	Conditions   KeywordTable    `yaml:"conditions"`
	Completeness KeywordTable    `yaml:"completeness"`
	Colors       KeywordTable    `yaml:"colors"`
	Bracelets    KeywordTable    `yaml:"bracelets"`
	StopWords    []string        `yaml:"stop_words"`
}

// DefaultVocabulary returns the built-in vocabulary. It panics if the embedded
// tables are malformed, which can only happen at build time.
func DefaultVocabulary() *Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", err))
	}
	return v
}

// LoadVocabulary reads and validates a vocabulary file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates vocabulary YAML. Keywords, aliases
// and stop words are lower-cased and trimmed.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}

	v.clean()

	if err := v.validate(); err != nil {
		return nil, fmt.Errorf("validating vocabulary: %w", err)
	}

	return &v, nil
}

func (v *Vocabulary) clean() {
	for i := range v.Currencies {
		v.Currencies[i].Token = canonicalKey(v.Currencies[i].Token)
		v.Currencies[i].Code = domain.Currency(
			strings.ToUpper(strings.TrimSpace(string(v.Currencies[i].Code))),
		)
	}
	for _, t := range []*KeywordTable{&v.Conditions, &v.Completeness, &v.Colors, &v.Bracelets} {
		t.clean()
	}
	v.StopWords = cleanList(v.StopWords)
}

func (t *KeywordTable) clean() {
	t.Keywords = cleanList(t.Keywords)
	t.Modifiers = cleanList(t.Modifiers)
	t.Suppress = cleanList(t.Suppress)

	aliases := make(map[string]string, len(t.Aliases))
	for k, val := range t.Aliases {
		aliases[canonicalKey(k)] = canonicalKey(val)
	}
	t.Aliases = aliases
}

func (v *Vocabulary) validate() error {
	var errs []error

	if len(v.Currencies) == 0 {
		errs = append(errs, ErrNoCurrencies)
	}
	for i, c := range v.Currencies {
		if c.Token == "" || c.Code == "" {
			errs = append(errs, fmt.Errorf("currencies[%d]: %w", i, ErrBadCurrency))
		}
	}

	errs = append(errs, v.Conditions.validate("conditions"))
	errs = append(errs, v.Completeness.validate("completeness"))
	errs = append(errs, v.Colors.validate("colors"))
	errs = append(errs, v.Bracelets.validate("bracelets"))

	return errors.Join(errs...)
}

func (t *KeywordTable) validate(name string) error {
	var errs []error

	seen := make(map[string]bool, len(t.Keywords))
	for i, k := range t.Keywords {
		if k == "" {
			errs = append(errs, fmt.Errorf("%s.keywords[%d]: %w", name, i, ErrEmptyKeyword))
			continue
		}
		if seen[k] {
			errs = append(errs, fmt.Errorf("%s.keywords %q: %w", name, k, ErrDuplicateKeyword))
		}
		seen[k] = true
	}

	for k, val := range t.Aliases {
		if val == "" {
			errs = append(errs, fmt.Errorf("%s.aliases %q: %w", name, k, ErrEmptyAlias))
		}
		if !seen[k] {
			errs = append(errs, fmt.Errorf("%s.aliases %q: %w", name, k, ErrUnknownAlias))
		}
	}

	for i, p := range t.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.patterns[%d] %q: %w: %v", name, i, p, ErrBadPattern, err))
			continue
		}
		if re.NumSubexp() > 0 {
			errs = append(errs, fmt.Errorf("%s.patterns[%d] %q: %w: capturing groups are not allowed",
				name, i, p, ErrBadPattern))
		}
	}

	for i, m := range t.Modifiers {
		if m == "" {
			errs = append(errs, fmt.Errorf("%s.modifiers[%d]: %w", name, i, ErrEmptyKeyword))
		}
	}

	return errors.Join(errs...)
}

// CanonicalMap maps raw keyword spellings to canonical tags.
type CanonicalMap struct {
	aliases    map[string]string
	suppressed map[string]bool
}

// NewCanonicalMap builds a map from aliases and suppressed placeholder tokens.
func NewCanonicalMap(aliases map[string]string, suppress []string) CanonicalMap {
	m := CanonicalMap{
		aliases:    make(map[string]string, len(aliases)),
		suppressed: make(map[string]bool, len(suppress)),
	}
	for k, v := range aliases {
		m.aliases[canonicalKey(k)] = v
	}
	for _, s := range suppress {
		m.suppressed[canonicalKey(s)] = true
	}
	return m
}

// Lookup returns the canonical tag for token. Suppressed tokens return
// ("", false). Tokens without an alias are returned unchanged.
func (m CanonicalMap) Lookup(token string) (string, bool) {
	key := canonicalKey(token)

	if m.suppressed[key] {
		return "", false
	}

	if v, ok := m.aliases[key]; ok {
		return v, true
	}

	// Identity fallback: unknown spellings are kept rather than dropped.
	return key, true
}

// Suppressed reports whether token is a placeholder that maps to no value.
func (m CanonicalMap) Suppressed(token string) bool {
	return m.suppressed[canonicalKey(token)]
}

func canonicalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = canonicalKey(s)
	}
	return out
}
