package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		31234567: "31,234,567",
	}
	for n, want := range tests {
		assert.Equal(t, want, FormatCount(n))
	}
}

func TestCountryRows(t *testing.T) {
	t.Parallel()

	rows := CountryRows([]dataset.CountrySnapshot{
		{Country: "US", Confirmed: 1500000, Deaths: 12000, Recovered: 300},
	})

	assert.Equal(t, []CountryRow{{Country: "US", Confirmed: "1,500,000", Deaths: "12,000", Recovered: "300"}}, rows)
}

func TestCountryOptions(t *testing.T) {
	t.Parallel()

	opts := CountryOptions([]string{"A", "B"}, "B")

	assert.Equal(t, []CountryOption{
		{Label: "A", Value: "A"},
		{Label: "B", Value: "B", Selected: true},
	}, opts)
	assert.Empty(t, CountryOptions(nil, ""))
}
