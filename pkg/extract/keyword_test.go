package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordMatcher_Extract(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()

	tests := []struct {
		name  string
		table KeywordTable
		text  string
		tags  []string
		rest  string
	}{
		{
			name:  "longest keyword wins",
			table: v.Conditions,
			text:  "rolex 126610ln pre-owned",
			tags:  []string{"used"},
			rest:  "rolex 126610ln",
		},
		{
			name:  "condition code pattern",
			table: v.Conditions,
			text:  "rolex 126610ln n8 unworn",
			tags:  []string{"n8", "unworn"},
			rest:  "rolex 126610ln",
		},
		{
			name:  "modifier composes",
			table: v.Colors,
			text:  "ap 15500st dark blue",
			tags:  []string{"dark blue"},
			rest:  "ap 15500st",
		},
		{
			name:  "modifier alone is a color",
			table: v.Colors,
			text:  "ap 15500st dark",
			tags:  []string{"dark"},
			rest:  "ap 15500st",
		},
		{
			name:  "suppressed placeholder removed without a tag",
			table: v.Colors,
			text:  "rolex 126610ln null",
			rest:  "rolex 126610ln",
		},
		{
			name:  "word boundaries respected",
			table: v.Colors,
			text:  "rolex 126610ln blackbay",
			rest:  "rolex 126610ln blackbay",
		},
		{
			name:  "empty table",
			table: KeywordTable{},
			text:  "rolex 126610ln black",
			rest:  "rolex 126610ln black",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := newKeywordMatcher("test", tt.table)
			require.NoError(t, err)

			hits, rest := m.extract(tt.text)
			assert.Equal(t, tt.tags, tagSet(hits))
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestFirstTag(t *testing.T) {
	t.Parallel()

	m, err := newKeywordMatcher("completeness", DefaultVocabulary().Completeness)
	require.NoError(t, err)

	hits, rest := m.extract("rolex 126610ln naked watch only full set")
	assert.Equal(t, "naked", firstTag(hits))
	assert.Equal(t, "rolex 126610ln", rest)
	assert.Empty(t, firstTag(nil))
}

func TestSortedKeywords(t *testing.T) {
	t.Parallel()

	got := sortedKeywords([]string{"set", "full set", "full", "naked", "set"})
	assert.Equal(t, []string{"full set", "naked", "full", "set"}, got)
}
