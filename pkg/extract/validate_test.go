package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

func TestValidator_Clean(t *testing.T) {
	t.Parallel()

	v, err := extract.NewValidator(extract.ValidatorConfig{}, extract.DefaultVocabulary().StopWords)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nothing to clean", in: "rolex 126610ln", want: "rolex 126610ln"},
		{name: "month names", in: "rolex 126610ln march", want: "rolex 126610ln"},
		{name: "multi word stop phrase", in: "rolex 126610ln in stock", want: "rolex 126610ln"},
		{name: "stop word inside a token kept", in: "rolex 126610ln stockholm", want: "rolex 126610ln stockholm"},
		{name: "punctuation only tokens", in: "rolex - 126610ln / ,", want: "rolex 126610ln"},
		{name: "everything removed", in: "available on hold", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.Clean(tt.in))
		})
	}
}

func TestValidator_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  extract.ValidatorConfig
		rec  domain.FieldRecord
		want domain.RejectReason
	}{
		{
			name: "valid",
			rec:  domain.FieldRecord{Reference: "rolex 126610ln"},
			want: domain.RejectNone,
		},
		{
			name: "empty",
			rec:  domain.FieldRecord{Reference: "  "},
			want: domain.RejectEmptyReference,
		},
		{
			name: "three digits",
			rec:  domain.FieldRecord{Reference: "tudor bb 58 1"},
			want: domain.RejectReferenceDigits,
		},
		{
			name: "digits threshold lowered",
			cfg:  extract.ValidatorConfig{MinReferenceDigits: 3},
			rec:  domain.FieldRecord{Reference: "tudor bb 58 1"},
			want: domain.RejectNone,
		},
		{
			name: "too long",
			rec:  domain.FieldRecord{Reference: "rolex 126610ln with a description that runs far past the limit"},
			want: domain.RejectReferenceLength,
		},
		{
			name: "length threshold raised",
			cfg:  extract.ValidatorConfig{MaxReferenceLength: 100},
			rec:  domain.FieldRecord{Reference: "rolex 126610ln with a description that runs far past the limit"},
			want: domain.RejectNone,
		},
		{
			name: "price required",
			cfg:  extract.ValidatorConfig{RequirePrice: true},
			rec:  domain.FieldRecord{Reference: "rolex 126610ln", Amount: ptr(98000.0)},
			want: domain.RejectNoPrice,
		},
		{
			name: "price present",
			cfg:  extract.ValidatorConfig{RequirePrice: true},
			rec:  domain.FieldRecord{Reference: "rolex 126610ln", FinalAmount: ptr(98000.0)},
			want: domain.RejectNone,
		},
		{
			name: "brand required",
			cfg:  extract.ValidatorConfig{RequireBrand: true},
			rec:  domain.FieldRecord{Reference: "rolex 126610ln"},
			want: domain.RejectNoBrand,
		},
		{
			name: "digits checked before price",
			cfg:  extract.ValidatorConfig{RequirePrice: true},
			rec:  domain.FieldRecord{Reference: "rolex submariner"},
			want: domain.RejectReferenceDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := extract.NewValidator(tt.cfg, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Check(&tt.rec))
		})
	}
}

func TestValidator_StopWordOverride(t *testing.T) {
	t.Parallel()

	v, err := extract.NewValidator(
		extract.ValidatorConfig{StopWords: []string{"Sold"}},
		extract.DefaultVocabulary().StopWords,
	)
	require.NoError(t, err)

	assert.Equal(t, "rolex 126610ln march", v.Clean("rolex 126610ln march sold"))
}
