package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		want     int
		strategy string
		rest     string
	}{
		{text: "rolex 126610ln 11/2021 hkd 98000", want: 2021, strategy: "month_year", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 2019-3 hkd 98000", want: 2019, strategy: "year_month", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln y2022 hkd 98000", want: 2022, strategy: "y_prefixed", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 2018y hkd 98000", want: 2018, strategy: "y_suffixed", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 2021 hkd 98000", want: 2021, strategy: "bare", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 23y hkd 98000", want: 2023, strategy: "short_y_suffixed", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 6/24 hkd 98000", want: 2024, strategy: "short_month_year", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln /22 hkd 98000", want: 2022, strategy: "short_slash", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln year2020 hkd 98000", want: 2020, strategy: "generic", rest: "rolex 126610ln hkd 98000"},
		{text: "rolex 126610ln 22 hkd 98000", want: 2022, strategy: "generic", rest: "rolex 126610ln hkd 98000"},

		// A specific form wins over an earlier bare year.
		{text: "2020 rolex 126610ln 11/2021", want: 2021, strategy: "month_year", rest: "2020 rolex 126610ln"},

		// Price punctuation around a number keeps it away from the year stage.
		{text: "rolex 126610ln $2000 hkd 98000"},
		{text: "rolex 126610ln 2021.50 black"},
		{text: "rolex 126610ln 2020k black"},
		{text: "rolex 126610ln -22 black"},
		{text: "rolex 126610ln 1850 black"},

		// A number led by a currency token is an amount.
		{text: "rolex 126610ln hkd 2050 black"},
		{text: "rolex 126610ln hk$ 1990 black"},
		{text: "rolex 126610ln usd 22 black"},
		{text: "rolex 126610ln 2021 hkd 2050", want: 2021, strategy: "bare", rest: "rolex 126610ln hkd 2050"},
	}

	currencies := map[string]struct{}{"hkd": {}, "hk": {}, "usd": {}, "usdt": {}, "kd": {}}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			y, start, end, name, ok := matchYear(tt.text, currencies)
			if tt.want == 0 {
				assert.False(t, ok, "matched %d via %s", y, name)
				return
			}

			assert.True(t, ok)
			assert.Equal(t, tt.want, y)
			assert.Equal(t, tt.strategy, name)
			assert.Equal(t, tt.rest, cutSpan(tt.text, start, end))
		})
	}
}
