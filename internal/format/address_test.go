package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Address
	}{
		{
			name: "street city state zip",
			in:   "123 Main St, Springfield, IL 62704",
			want: Address{Line1: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"},
		},
		{
			name: "four segments fill line two",
			in:   "123 Main St, Suite 4, Springfield, IL 62704",
			want: Address{Line1: "123 Main St", Line2: "Suite 4", City: "Springfield", State: "IL", Zip: "62704"},
		},
		{
			name: "newlines act as separators",
			in:   "123 Main St\nSpringfield, IL 62704",
			want: Address{Line1: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"},
		},
		{
			name: "trailing zip only",
			in:   "123 Main St, Springfield, 62704",
			want: Address{Line1: "123 Main St", City: "Springfield", Zip: "62704"},
		},
		{
			name: "trailing state only",
			in:   "123 Main St, Springfield, Illinois",
			want: Address{Line1: "123 Main St", City: "Springfield", State: "Illinois"},
		},
		{
			name: "two segments with state and zip",
			in:   "123 Main St, Springfield IL 62704",
			want: Address{Line1: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"},
		},
		{
			name: "two segments city only",
			in:   "123 Main St, Springfield",
			want: Address{Line1: "123 Main St", City: "Springfield"},
		},
		{
			name: "single segment",
			in:   "123 Main St",
			want: Address{Line1: "123 Main St"},
		},
		{
			name: "blank",
			in:   "   ",
			want: Address{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAddress(tt.in))
		})
	}
}
