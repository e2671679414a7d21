package models

// PrizeCategory is one of the fixed prize tiers of a draw result
type PrizeCategory string

const (
	PrizeFirst  PrizeCategory = "1st Prize"
	PrizeSecond PrizeCategory = "2nd Prize"
	PrizeThird  PrizeCategory = "3rd Prize"
	PrizeFourth PrizeCategory = "4th Prize"
	PrizeFifth  PrizeCategory = "5th Prize"
)

// PrizeCategories lists the tiers in draw-sheet order
var PrizeCategories = []PrizeCategory{PrizeFirst, PrizeSecond, PrizeThird, PrizeFourth, PrizeFifth}

// defaultPrizeAmounts are the printed prize amounts used when a saved result carries none
var defaultPrizeAmounts = map[PrizeCategory]string{
	PrizeFirst:  "₹25,000/-",
	PrizeSecond: "₹20,000/-",
	PrizeThird:  "₹2,000/-",
	PrizeFourth: "₹700/-",
	PrizeFifth:  "₹300/-",
}

// vcAmounts and svcAmounts are per-unit commission tiers, independent of the prize amount
var vcAmounts = map[PrizeCategory]int64{
	PrizeFirst:  2000,
	PrizeSecond: 2000,
	PrizeThird:  200,
	PrizeFourth: 150,
	PrizeFifth:  70,
}

var svcAmounts = map[PrizeCategory]int64{
	PrizeFirst:  400,
	PrizeSecond: 400,
	PrizeThird:  40,
	PrizeFourth: 20,
	PrizeFifth:  10,
}

// Valid reports whether c is one of the known tiers
func (c PrizeCategory) Valid() bool {
	_, ok := defaultPrizeAmounts[c]
	return ok
}

// DefaultAmount returns the printed prize amount for the tier ("N/A" for unknown tiers)
func (c PrizeCategory) DefaultAmount() string {
	if amount, ok := defaultPrizeAmounts[c]; ok {
		return amount
	}
	return "N/A"
}

// VCAmount returns the per-unit VC payout (0 for unknown tiers)
func (c PrizeCategory) VCAmount() int64 {
	return vcAmounts[c]
}

// SVCAmount returns the per-unit SVC payout (0 for unknown tiers)
func (c PrizeCategory) SVCAmount() int64 {
	return svcAmounts[c]
}
