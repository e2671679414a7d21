package models

import "slices"

// UnsoldEntry is one ticket the operator marked as returned; IsValid is false when the
// ticket was never part of the row's purchase
type UnsoldEntry struct {
	Ticket  string `bson:"ticket" json:"ticket"`
	IsValid bool   `bson:"isValid" json:"isValid"`
}

// SaleRow is one customer's allocation for one draw slot.
// Only CustomerName, Multiplier, PurchaseRanges and UnsoldRaw are operator input; every other
// field is derived and recomputed whenever the row is reconciled.
type SaleRow struct {
	CustomerName   string `bson:"customerName" json:"customerName"`
	Multiplier     int    `bson:"multiplier" json:"multiplier"` // SEM
	PurchaseRanges string `bson:"purchaseRanges" json:"purchaseRanges"`
	UnsoldRaw      string `bson:"unsoldRaw" json:"unsoldRaw"`

	PurchasedTickets []string        `bson:"purchasedTickets,omitempty" json:"purchasedTickets"`
	PurchaseCount    int             `bson:"purchaseCount" json:"purchaseCount"`
	UnsoldEntries    []UnsoldEntry   `bson:"unsoldEntries,omitempty" json:"unsoldEntries"`
	SoldTickets      []string        `bson:"soldTickets,omitempty" json:"soldTickets"`
	SoldRanges       []string        `bson:"soldRanges,omitempty" json:"soldRanges"`
	WinningTickets   []WinningTicket `bson:"winningTickets,omitempty" json:"winningTickets"`
	Breakdown        PrizeBreakdown  `bson:"breakdown" json:"breakdown"`
}

// Source returns a copy of the row carrying only operator input
func (r SaleRow) Source() SaleRow {
	return SaleRow{
		CustomerName:   r.CustomerName,
		Multiplier:     r.Multiplier,
		PurchaseRanges: r.PurchaseRanges,
		UnsoldRaw:      r.UnsoldRaw,
	}
}

// ResetDerived clears every computed field
func (r *SaleRow) ResetDerived() {
	r.PurchasedTickets = []string{}
	r.PurchaseCount = 0
	r.UnsoldEntries = []UnsoldEntry{}
	r.SoldTickets = []string{}
	r.SoldRanges = []string{}
	r.WinningTickets = []WinningTicket{}
	r.Breakdown = PrizeBreakdown{PWT: []string{}, VC: []string{}, SVC: []string{}}
}

// ValidUnsoldCount counts unsold entries that were part of the purchase
func (r SaleRow) ValidUnsoldCount() int {
	n := 0
	for _, e := range r.UnsoldEntries {
		if e.IsValid {
			n++
		}
	}
	return n
}

// CloneRows deep-copies rows so persisted and in-memory forms never share slices
func CloneRows(rows []SaleRow) []SaleRow {
	if rows == nil {
		return nil
	}
	out := make([]SaleRow, len(rows))
	for i, r := range rows {
		c := r
		c.PurchasedTickets = slices.Clone(r.PurchasedTickets)
		c.UnsoldEntries = slices.Clone(r.UnsoldEntries)
		c.SoldTickets = slices.Clone(r.SoldTickets)
		c.SoldRanges = slices.Clone(r.SoldRanges)
		c.WinningTickets = slices.Clone(r.WinningTickets)
		c.Breakdown = PrizeBreakdown{
			PWT: slices.Clone(r.Breakdown.PWT),
			VC:  slices.Clone(r.Breakdown.VC),
			SVC: slices.Clone(r.Breakdown.SVC),
		}
		out[i] = c
	}
	return out
}
