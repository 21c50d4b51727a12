package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"85", "₹85"},
		{"950", "₹950"},
		{"4500", "₹4,500"},
		{"125000", "₹1,25,000"},
		{"1234567", "₹12,34,567"},
		{"1234567.80", "₹12,34,568"}, // zero fraction digits, rounded
		{"-40500", "-₹40,500"},
	}

	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, FormatINR(d), "input %s", tc.in)
	}
}
