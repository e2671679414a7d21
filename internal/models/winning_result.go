package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoNumbers marks a prize row for which no winning numbers were found
const NoNumbers = "N/A"

// PrizeResult is one line of a draw result sheet
type PrizeResult struct {
	Category PrizeCategory `bson:"category" json:"category" binding:"required"`
	Amount   string        `bson:"amount" json:"amount"`   // display string, e.g. "₹25,000/-"
	Numbers  string        `bson:"numbers" json:"numbers"` // comma separated, or "N/A"
}

// WinningResult is the result sheet of one draw slot on one day
type WinningResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date      string             `bson:"date" json:"date"`
	Slot      DrawSlot           `bson:"slot" json:"slot"`
	SlotOrder int                `bson:"slotOrder" json:"-"`
	Prizes    []PrizeResult      `bson:"prizes" json:"prizes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns an independent copy of the result
func (w *WinningResult) Clone() *WinningResult {
	c := *w
	c.Prizes = slices.Clone(w.Prizes)
	return &c
}
