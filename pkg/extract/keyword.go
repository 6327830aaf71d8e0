package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// maxRemovalPasses bounds the re-scan loop in keywordMatcher.extract. A pass
// only repeats when a removal exposed a new match, which needs nested keywords.
const maxRemovalPasses = 4

// keywordHit is one canonicalized match and where it started in the text.
type keywordHit struct {
	pos int
	tag string
}

// keywordMatcher is the compiled multi-match extractor for one field.
// Keywords are tried longest first so "pre-owned" wins over "owned" and
// "full set" wins over "full".
type keywordMatcher struct {
	field string
	re    *regexp.Regexp
	canon CanonicalMap
}

// newKeywordMatcher compiles a table into one word-boundary anchored
// alternation. Group 1 is the optional modifier, group 2 the keyword. An
// empty table matches nothing.
func newKeywordMatcher(field string, t KeywordTable) (*keywordMatcher, error) {
	alts := sortedKeywords(append(slices.Clone(t.Keywords), t.Suppress...))
	for i, k := range alts {
		alts[i] = regexp.QuoteMeta(k)
	}
	alts = append(alts, t.Patterns...)

	m := &keywordMatcher{
		field: field,
		canon: NewCanonicalMap(t.Aliases, t.Suppress),
	}
	if len(alts) == 0 {
		return m, nil
	}

	expr := `\b(?:(` + strings.Join(quoteAll(sortedKeywords(t.Modifiers)), "|") + `)\s+)?(` +
		strings.Join(alts, "|") + `)\b`
	if len(t.Modifiers) == 0 {
		expr = `\b()(` + strings.Join(alts, "|") + `)\b`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	m.re = re

	return m, nil
}

// extract returns every canonical hit in text order and the text with every
// matched span replaced by a space.
func (m *keywordMatcher) extract(text string) ([]keywordHit, string) {
	if m.re == nil {
		return nil, text
	}

	var hits []keywordHit

	for range maxRemovalPasses {
		locs := m.re.FindAllStringSubmatchIndex(text, -1)
		if len(locs) == 0 {
			break
		}

		for _, loc := range locs {
			var mod string
			if loc[2] >= 0 {
				mod = text[loc[2]:loc[3]]
			}
			kw := text[loc[4]:loc[5]]
			if tag, ok := m.canonical(mod, kw); ok {
				hits = append(hits, keywordHit{pos: loc[0], tag: tag})
			}
		}

		text = collapseSpaces(m.re.ReplaceAllString(text, " "))
	}

	return hits, text
}

// canonical maps a matched keyword, with its optional modifier, to its tag.
func (m *keywordMatcher) canonical(mod, kw string) (string, bool) {
	if mod == "" {
		return m.canon.Lookup(kw)
	}

	if tag, ok := m.canon.aliases[mod+" "+kw]; ok {
		return tag, true
	}

	base, ok := m.canon.Lookup(kw)
	if !ok {
		return m.canon.Lookup(mod)
	}
	return mod + " " + base, true
}

// tagSet returns the de-duplicated, sorted tags of hits.
func tagSet(hits []keywordHit) []string {
	if len(hits) == 0 {
		return nil
	}
	tags := make([]string, 0, len(hits))
	for _, h := range hits {
		tags = append(tags, h.tag)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// firstTag returns the tag of the earliest hit in the text.
func firstTag(hits []keywordHit) string {
	if len(hits) == 0 {
		return ""
	}
	first := slices.MinFunc(hits, func(a, b keywordHit) int {
		return cmp.Compare(a.pos, b.pos)
	})
	return first.tag
}

// sortedKeywords orders keywords by descending length, then alphabetically.
func sortedKeywords(in []string) []string {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return slices.Compact(out)
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = regexp.QuoteMeta(s)
	}
	return out
}
