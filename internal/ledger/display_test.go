package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericDisplay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "AB001-AB010", expected: "001-010"},
		{input: "1-010", expected: "001-010"},
		{input: "0008-10", expected: "0008-10"},
		{input: "AB12", expected: "12"},
		{input: "XYZ", expected: "XYZ"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumericDisplay(tt.input))
		})
	}
}

func TestSoldLines(t *testing.T) {
	tickets := ExpandRanges("AB001-AB009").Tickets.Tickets()

	lines := SoldLines(tickets, SoldNumbersPerLine)
	assert.Equal(t, []string{
		"001, 002, 003, 004, 005, 006, 007",
		"008, 009",
	}, lines)

	assert.Empty(t, SoldLines(nil, 0))
}

func TestAmountFormatter(t *testing.T) {
	f := NewAmountFormatter(DefaultLocale)
	assert.Equal(t, "700", f.Format(700))
	assert.Equal(t, "2,000", f.Format(2000))
	assert.Equal(t, "25,000", f.Format(25000))

	fallback := NewAmountFormatter("not a locale!")
	assert.Equal(t, "2,000", fallback.Format(2000))
}
