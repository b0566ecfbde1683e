package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil renders empty", nil, ""},
		{"empty string renders empty", "", ""},
		{"zero means excluded", float64(0), "Excluded"},
		{"excluded literal", "Excluded", "Excluded"},
		{"excluded literal lowercase", "excluded", "Excluded"},
		{"excl shorthand", "excl", "Excluded"},
		{"not applicable", "N/A", "Excluded"},
		{"integral with separators", float64(1000000), "1,000,000"},
		{"small integral", float64(500), "500"},
		{"fractional keeps two decimals", 1500.5, "1,500.50"},
		{"numeric string", "2000000", "2,000,000"},
		{"numeric string with commas", "1,000,000", "1,000,000"},
		{"numeric string zero", "0", "Excluded"},
		{"non-numeric passes through", "Included", "Included"},
		{"negative integral", float64(-2500), "-2,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.in))
		})
	}
}
