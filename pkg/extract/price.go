package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Low-value band defaults. A final amount strictly inside (floor, threshold)
// is treated as a probable misparse and triggers the fallback pass.
const (
	DefaultPriceFloor     = 22
	DefaultPriceThreshold = 5000
)

// numberExpr matches a numeral with optional separators. It always starts and
// ends on a digit.
const numberExpr = `\d(?:[\d.,]*\d)?`

// priceTier ranks the price patterns. Lower values win.
type priceTier int

const (
	tierCurrency priceTier = iota
	tierDollar
	tierSuffixed
	tierGrouped
	tierPlain
	tierCount
)

var tierNames = [tierCount]string{"currency", "dollar", "suffixed", "grouped", "plain"}

func (t priceTier) String() string {
	if t < 0 || t >= tierCount {
		return "none"
	}
	return tierNames[t]
}

var (
	// dollarRegex matches "$85,000", "$ 1.2m", "$85k".
	// Group 1 is the span, group 2 the numeral, group 3 the unit suffix.
	dollarRegex = regexp.MustCompile(`(?:^|[^a-z0-9])(\$\s?(` + numberExpr + `)([km])?)(?:[^a-z0-9]|$)`)

	// Bare tiers are matched per whitespace-delimited token.
	suffixedTokenRegex = regexp.MustCompile(`^(` + numberExpr + `)([km])$`)
	groupedTokenRegex  = regexp.MustCompile(`^\d{1,3}(?:[.,]\d{3})+$`)
	plainTokenRegex    = regexp.MustCompile(`^\d{3,}$`)

	tokenRegex = regexp.MustCompile(`\S+`)

	// discountRegex matches a standalone "-10" or "-12.5".
	// Group 1 is the span, group 2 the percentage.
	discountRegex = regexp.MustCompile(`(?:^|\s)(-(\d+(?:\.\d+)?))(?:\s|$)`)

	// nCodePriceRegex matches a price glued to a condition code: "n12,500".
	nCodePriceRegex = regexp.MustCompile(`\bn(\d+)(,(\d+))\b`)

	// dollarDigitsRegex matches "$85" but not "$4,500" in the fallback pass.
	dollarDigitsRegex = regexp.MustCompile(`\$(\d+)(?:[^\d.,]|$)`)
)

// priceCandidate is one price-like match.
type priceCandidate struct {
	tier       priceTier
	start, end int
	amount     float64
}

// Price is the outcome of price resolution for one line.
type Price struct {
	Amount      *float64
	DiscountPct *float64
	FinalAmount *float64
	Tier        string
	Recovered   bool
}

// PriceResolver finds the asking price and discount in listing text.
type PriceResolver struct {
	prefixRegex *regexp.Regexp
	suffixRegex *regexp.Regexp
	floor       float64
	threshold   float64
}

// NewPriceResolver builds the currency-qualified patterns from the currency
// tokens, longest first.
func NewPriceResolver(currencyTokens []string, floor, threshold float64) (*PriceResolver, error) {
	tokens := strings.Join(quoteAll(sortedKeywords(currencyTokens)), "|")

	// "hkd85000", "hk$ 1.2m". Groups: span, numeral, suffix.
	prefix, err := regexp.Compile(`(?:^|[^a-z])((?:` + tokens + `)\s?\$?\s?(` + numberExpr + `)([km])?)(?:[^a-z0-9]|$)`)
	if err != nil {
		return nil, err
	}

	// "85000hkd", "$85k hkd", "85 kd". Groups: span, numeral, suffix.
	suffix, err := regexp.Compile(`(?:^|[^a-z0-9.,])(\$?(` + numberExpr + `)([km])?\s?(?:` + tokens + `))(?:[^a-z]|$)`)
	if err != nil {
		return nil, err
	}

	if floor <= 0 {
		floor = DefaultPriceFloor
	}
	if threshold <= 0 {
		threshold = DefaultPriceThreshold
	}

	return &PriceResolver{
		prefixRegex: prefix,
		suffixRegex: suffix,
		floor:       floor,
		threshold:   threshold,
	}, nil
}

// Resolve extracts the price and discount from text. source is the whole
// normalized line, consulted only by the low-value fallback. The returned
// text has the winning price span and the discount removed.
func (r *PriceResolver) Resolve(text, source string) (Price, string) {
	var p Price

	discStart, discEnd := -1, -1
	if pct, s, e, ok := findDiscount(text); ok {
		p.DiscountPct = &pct
		discStart, discEnd = s, e
	}

	candidates := r.candidates(text, discStart)
	winner := selectPrice(candidates)

	if winner != nil {
		amount := winner.amount
		p.Amount = &amount
		p.Tier = winner.tier.String()
	}

	// Remove the later span first so the earlier offsets stay valid.
	spans := [][2]int{}
	if winner != nil {
		spans = append(spans, [2]int{winner.start, winner.end})
	}
	if discStart >= 0 {
		spans = append(spans, [2]int{discStart, discEnd})
	}
	if len(spans) == 2 && spans[0][0] < spans[1][0] {
		spans[0], spans[1] = spans[1], spans[0]
	}
	for _, s := range spans {
		text = cutSpan(text, s[0], s[1])
	}

	p.FinalAmount = finalAmount(p.Amount, p.DiscountPct)

	if r.lowValue(p.FinalAmount) {
		if amount, rest, ok := r.recover(text, source); ok {
			p.Amount = &amount
			p.FinalAmount = finalAmount(p.Amount, p.DiscountPct)
			p.Recovered = true
			text = rest
		}
	}

	return p, text
}

// candidates evaluates every tier. Index i holds the tier i candidate or nil.
func (r *PriceResolver) candidates(text string, discountStart int) [tierCount]*priceCandidate {
	var out [tierCount]*priceCandidate

	out[tierCurrency] = firstQualified(text, tierCurrency, r.prefixRegex, r.suffixRegex)
	out[tierDollar] = firstQualified(text, tierDollar, dollarRegex)

	var bare [tierCount][]priceCandidate
	for _, loc := range tokenRegex.FindAllStringIndex(text, -1) {
		tok := strings.TrimRight(text[loc[0]:loc[1]], ".,")
		start, end := loc[0], loc[0]+len(tok)

		switch {
		case suffixedTokenRegex.MatchString(tok):
			if v, ok := ParseAmount(tok); ok {
				bare[tierSuffixed] = append(bare[tierSuffixed], priceCandidate{tierSuffixed, start, end, v})
			}
		case groupedTokenRegex.MatchString(tok):
			if v, ok := ParseAmount(tok); ok {
				bare[tierGrouped] = append(bare[tierGrouped], priceCandidate{tierGrouped, start, end, v})
			}
		case plainTokenRegex.MatchString(tok):
			if v, ok := ParseAmount(tok); ok {
				bare[tierPlain] = append(bare[tierPlain], priceCandidate{tierPlain, start, end, v})
			}
		}
	}

	for _, t := range []priceTier{tierSuffixed, tierGrouped, tierPlain} {
		out[t] = pickBare(text, bare[t], discountStart)
	}

	return out
}

// selectPrice applies the precedence ladder: currency-qualified, then
// $-qualified, then bare numerals. Lower-ranked candidates are dropped and
// their text is left for the reference.
func selectPrice(candidates [tierCount]*priceCandidate) *priceCandidate {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// firstQualified tries the regexes in order and returns the earliest
// parseable match of the first one that has any. Each regex must capture
// span, numeral and suffix as groups 1 to 3. Trying the prefix form first
// keeps "79230 hkd 26500" on the amount that follows the currency.
func firstQualified(text string, tier priceTier, res ...*regexp.Regexp) *priceCandidate {
	for _, re := range res {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			num := text[loc[4]:loc[5]]
			if loc[6] >= 0 {
				num += text[loc[6]:loc[7]]
			}
			v, ok := ParseAmount(num)
			if !ok {
				continue
			}
			return &priceCandidate{tier: tier, start: loc[2], end: loc[3], amount: v}
		}
	}
	return nil
}

// pickBare chooses among bare numerals of one tier: the one directly before
// the discount token if any, else the rightmost.
func pickBare(text string, cands []priceCandidate, discountStart int) *priceCandidate {
	if len(cands) == 0 {
		return nil
	}
	if discountStart >= 0 {
		for i := range cands {
			if cands[i].end <= discountStart && strings.TrimSpace(text[cands[i].end:discountStart]) == "" {
				return &cands[i]
			}
		}
	}
	return &cands[len(cands)-1]
}

// findDiscount returns the first standalone "-N" token with 0 < N < 100.
func findDiscount(text string) (pct float64, start, end int, ok bool) {
	for _, loc := range discountRegex.FindAllStringSubmatchIndex(text, -1) {
		v, err := strconv.ParseFloat(text[loc[4]:loc[5]], 64)
		if err != nil || v <= 0 || v >= 100 {
			continue
		}
		return v, loc[2], loc[3], true
	}
	return 0, 0, 0, false
}

// lowValue reports whether a final amount is missing or inside the
// suspicious low band.
func (r *PriceResolver) lowValue(final *float64) bool {
	if final == nil {
		return true
	}
	return *final > r.floor && *final < r.threshold
}

// recover tries the fallback patterns against the whole source line. A price
// glued to a condition code ("n12,500") has its digits concatenated; a bare
// "$85" is read in thousands. Only the ",500" tail of a condition code is
// cut so the code itself still reaches the condition stage.
func (r *PriceResolver) recover(text, source string) (float64, string, bool) {
	if m := nCodePriceRegex.FindStringSubmatch(source); m != nil {
		v, err := strconv.ParseFloat(m[1]+m[3], 64)
		if err == nil {
			if loc := nCodePriceRegex.FindStringSubmatchIndex(text); loc != nil {
				text = cutSpan(text, loc[4], loc[5])
			}
			return v, text, true
		}
	}

	if m := dollarDigitsRegex.FindStringSubmatch(source); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if loc := dollarDigitsRegex.FindStringSubmatchIndex(text); loc != nil {
				text = cutSpan(text, loc[0], loc[3])
			}
			return v * 1000, text, true
		}
	}

	return 0, text, false
}

// ParseAmount converts a price numeral such as "85,000", "1.5m", "2k" or
// "$1,250.50" into a number. Separators are thousands groupings except a
// single trailing separator followed by one or two digits before a unit
// suffix, or a dot after comma groups ("1,250.5k", cents in "85,000.50").
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "$")
	s = strings.TrimSpace(s)

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult = 1e3
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"):
		mult = 1e6
		s = s[:len(s)-1]
	}

	if s == "" {
		return 0, false
	}

	intPart, fracPart := s, ""
	if sep := strings.LastIndexAny(s, ".,"); sep >= 0 {
		tail := s[sep+1:]
		single := strings.Count(s, ".")+strings.Count(s, ",") == 1

		var decimal bool
		switch {
		case mult > 1 && single:
			decimal = len(tail) <= 2 || mult == 1e6
		case mult > 1:
			decimal = s[sep] == '.' && strings.Contains(s[:sep], ",")
		case mult == 1:
			decimal = s[sep] == '.' && strings.Contains(s[:sep], ",") && len(tail) <= 2
		}

		if decimal {
			intPart, fracPart = s[:sep], tail
		}
	}

	digits := strings.NewReplacer(",", "", ".", "").Replace(intPart)
	if digits == "" {
		return 0, false
	}
	num := digits
	if fracPart != "" {
		num += "." + fracPart
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return round2(v * mult), true
}

// finalAmount applies the discount percentage to amount.
func finalAmount(amount, discountPct *float64) *float64 {
	if amount == nil {
		return nil
	}
	final := *amount
	if discountPct != nil {
		final = round2(*amount * (1 - *discountPct/100))
	}
	return &final
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
