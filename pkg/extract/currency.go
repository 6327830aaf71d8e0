package extract

import (
	"regexp"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// currencyMatcher finds currency tokens that stand on their own or lead into
// an amount: "hkd85000", "85k hkd", "usd$1200". The letters around the token
// must not be part of a longer word, so "usdt" never matches as "usd".
type currencyMatcher struct {
	tokens []compiledCurrency
}

type compiledCurrency struct {
	token string
	code  domain.Currency
	re    *regexp.Regexp
}

func newCurrencyMatcher(tokens []CurrencyToken) (*currencyMatcher, error) {
	m := &currencyMatcher{tokens: make([]compiledCurrency, 0, len(tokens))}
	for _, t := range tokens {
		re, err := regexp.Compile(`(?:^|[^a-z])(` + regexp.QuoteMeta(t.Token) + `)(?:[^a-z]|$)`)
		if err != nil {
			return nil, err
		}
		m.tokens = append(m.tokens, compiledCurrency{token: t.Token, code: t.Code, re: re})
	}
	return m, nil
}

// detect returns the code of the first token, in preference order, present in text.
func (m *currencyMatcher) detect(text string) (domain.Currency, bool) {
	for _, t := range m.tokens {
		if t.re.MatchString(text) {
			return t.code, true
		}
	}
	return "", false
}

// strip removes every occurrence of every token that maps to code.
func (m *currencyMatcher) strip(text string, code domain.Currency) string {
	for _, t := range m.tokens {
		if t.code != code {
			continue
		}
		for {
			loc := t.re.FindStringSubmatchIndex(text)
			if loc == nil {
				break
			}
			text = cutSpan(text, loc[2], loc[3])
		}
	}
	return text
}

// tokenList returns the raw tokens in preference order.
func (m *currencyMatcher) tokenList() []string {
	out := make([]string, len(m.tokens))
	for i, t := range m.tokens {
		out[i] = t.token
	}
	return out
}

// tokenSet returns the raw tokens as a set.
func (m *currencyMatcher) tokenSet() map[string]struct{} {
	out := make(map[string]struct{}, len(m.tokens))
	for _, t := range m.tokens {
		out[t.token] = struct{}{}
	}
	return out
}
