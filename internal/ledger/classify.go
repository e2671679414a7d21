package ledger

import "github.com/ArowuTest/ticket-ledger/internal/models"

// Classification splits a purchase into sold and unsold tickets
type Classification struct {
	Unsold  []models.UnsoldEntry
	Sold    []string
	Invalid int
}

// Classify marks each distinct unsold entry valid when it was purchased and returns the
// purchased tickets, in order, minus the valid unsold ones
func Classify(purchased *TicketSet, unsoldRaw string) Classification {
	entries := NewTicketSet(SplitList(unsoldRaw)...)

	c := Classification{Unsold: make([]models.UnsoldEntry, 0, entries.Len()), Sold: []string{}}
	returned := NewTicketSet()
	for _, t := range entries.Tickets() {
		valid := purchased.Has(t)
		c.Unsold = append(c.Unsold, models.UnsoldEntry{Ticket: t, IsValid: valid})
		if valid {
			returned.Add(t)
		} else {
			c.Invalid++
		}
	}

	for _, t := range purchased.Tickets() {
		if !returned.Has(t) {
			c.Sold = append(c.Sold, t)
		}
	}
	return c
}
