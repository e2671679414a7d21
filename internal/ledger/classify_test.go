package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

func TestClassify(t *testing.T) {
	purchased := ExpandRanges("001-010").Tickets

	tests := []struct {
		name            string
		unsold          string
		expectedSold    []string
		expectedUnsold  []models.UnsoldEntry
		expectedInvalid int
	}{
		{
			name:         "valid unsold removed from sold",
			unsold:       "003,007",
			expectedSold: []string{"001", "002", "004", "005", "006", "008", "009", "010"},
			expectedUnsold: []models.UnsoldEntry{
				{Ticket: "003", IsValid: true},
				{Ticket: "007", IsValid: true},
			},
		},
		{
			name:            "unknown unsold flagged and ignored",
			unsold:          "9999",
			expectedSold:    []string{"001", "002", "003", "004", "005", "006", "007", "008", "009", "010"},
			expectedUnsold:  []models.UnsoldEntry{{Ticket: "9999", IsValid: false}},
			expectedInvalid: 1,
		},
		{
			name:         "duplicates and blanks collapse",
			unsold:       " 003 ,003,, 3",
			expectedSold: []string{"001", "002", "004", "005", "006", "007", "008", "009", "010"},
			expectedUnsold: []models.UnsoldEntry{
				{Ticket: "003", IsValid: true},
				{Ticket: "3", IsValid: false},
			},
			expectedInvalid: 1,
		},
		{
			name:           "nothing unsold",
			unsold:         "",
			expectedSold:   purchased.Tickets(),
			expectedUnsold: []models.UnsoldEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(purchased, tt.unsold)
			assert.Equal(t, tt.expectedSold, c.Sold)
			assert.Equal(t, tt.expectedUnsold, c.Unsold)
			assert.Equal(t, tt.expectedInvalid, c.Invalid)
		})
	}
}

func TestClassify_Partition(t *testing.T) {
	purchased := ExpandRanges("AB001-AB020,X1").Tickets
	c := Classify(purchased, "AB005,AB006,X1,ZZ9,AB005")

	sold := NewTicketSet(c.Sold...)
	valid := 0
	for _, e := range c.Unsold {
		if e.IsValid {
			valid++
			assert.False(t, sold.Has(e.Ticket))
		}
	}
	assert.Equal(t, purchased.Len(), sold.Len()+valid)
	for _, s := range c.Sold {
		assert.True(t, purchased.Has(s))
	}
}
