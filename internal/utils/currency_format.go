package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount the way the funds pages display money: rupee
// sign, Indian digit grouping, zero fraction digits.
// Example: 1234567.80 -> "₹12,34,568"
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	neg := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(digits))
	return b.String()
}

// groupIndian inserts commas in en-IN style: the last three digits form one
// group, everything before that is grouped in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
