package models

// WinningTicket is a sold ticket that ends with one of the draw's winning numbers
type WinningTicket struct {
	Ticket        string        `bson:"ticket" json:"ticket"`
	WinningNumber string        `bson:"winningNumber" json:"winningNumber"`
	Category      PrizeCategory `bson:"category" json:"category"`
}

// PrizeBreakdown holds the formatted payout line items of a row, one list per payout kind
type PrizeBreakdown struct {
	PWT []string `bson:"pwt" json:"pwt"`
	VC  []string `bson:"vc" json:"vc"`
	SVC []string `bson:"svc" json:"svc"`
}
