package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible production years.
const (
	MinYear = 1900
	MaxYear = 2050
)

// yearStrategy is one entry in the ordered year pattern list. span is the
// capture group removed from the text (0 for the whole match) and group
// holds the year digits.
type yearStrategy struct {
	name     string
	re       *regexp.Regexp
	span     int
	group    int
	isolated bool
}

// yearStrategies is evaluated in order; the first strategy with a match wins.
// Specific forms come first so bare two-digit numbers cannot pre-empt them.
var yearStrategies = []yearStrategy{
	{
		// "11/2021", "3-2019", "06.2020"
		name:  "month_year",
		re:    regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])[/.-](19\d{2}|20[0-4]\d|2050)\b`),
		group: 1,
	},
	{
		// "2021/11", "2019-3"
		name:  "year_month",
		re:    regexp.MustCompile(`\b(19\d{2}|20[0-4]\d|2050)[/.-](?:0?[1-9]|1[0-2])\b`),
		group: 1,
	},
	{
		// "y2021", "y 2021", "y-2021"
		name:  "y_prefixed",
		re:    regexp.MustCompile(`\by[\s-]?(19\d{2}|20[0-4]\d|2050)\b`),
		group: 1,
	},
	{
		// "2021y"
		name:  "y_suffixed",
		re:    regexp.MustCompile(`\b(19\d{2}|20[0-4]\d|2050)y\b`),
		group: 1,
	},
	{
		// "2021"
		name:     "bare",
		re:       regexp.MustCompile(`\b(19\d{2}|20[0-4]\d|2050)\b`),
		group:    1,
		isolated: true,
	},
	{
		// "21y"
		name:  "short_y_suffixed",
		re:    regexp.MustCompile(`\b([12]\d)y\b`),
		group: 1,
	},
	{
		// "11/21"
		name:  "short_month_year",
		re:    regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])/(2\d)\b`),
		group: 1,
	},
	{
		// "/21"
		name:  "short_slash",
		re:    regexp.MustCompile(`(?:^|\s)(/(2\d))(?:\s|$)`),
		span:  1,
		group: 2,
	},
	{
		// "year2021", "21year", "22"
		name:     "generic",
		re:       regexp.MustCompile(`(?:^|\s)((?:year)?(19\d{2}|20[0-4]\d|2050|2\d)(?:year)?)(?:\s|$)`),
		span:     1,
		group:    2,
		isolated: true,
	},
}

// matchYear runs the strategy list against text. It returns the year, the
// matched span and the strategy name, or ok=false. currencies holds the
// currency tokens; a bare number right after one is an amount.
func matchYear(text string, currencies map[string]struct{}) (year, start, end int, name string, ok bool) {
	for _, s := range yearStrategies {
		for _, loc := range s.re.FindAllStringSubmatchIndex(text, -1) {
			start, end = loc[2*s.span], loc[2*s.span+1]
			if s.isolated && !isolatedSpan(text, start, end, currencies) {
				continue
			}

			y, err := strconv.Atoi(text[loc[2*s.group]:loc[2*s.group+1]])
			if err != nil {
				continue
			}
			if y < 100 {
				y += 2000
			}
			if y < MinYear || y > MaxYear {
				continue
			}

			return y, start, end, s.name, true
		}
	}
	return 0, 0, 0, "", false
}

// isolatedSpan rejects numbers glued to price punctuation, such as "$2000"
// or "2,050", and numbers led by a currency token ("hkd 2050"). Those belong
// to the price stage.
func isolatedSpan(text string, start, end int, currencies map[string]struct{}) bool {
	if start > 0 {
		switch text[start-1] {
		case '$', ',', '.', '-':
			return false
		}
	}
	if end < len(text) {
		switch text[end] {
		case ',', '.', 'k', 'm':
			return false
		}
	}
	if prev := previousToken(text, start); prev != "" {
		if _, ok := currencies[strings.TrimRight(prev, "$")]; ok {
			return false
		}
	}
	return true
}

// previousToken returns the whitespace-delimited token before offset.
func previousToken(text string, offset int) string {
	head := strings.TrimRight(text[:offset], " ")
	return head[strings.LastIndexByte(head, ' ')+1:]
}
