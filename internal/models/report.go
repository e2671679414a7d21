package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the layout of every date key used by reports, results and rosters
const DateLayout = "2006-01-02"

// Report is the saved sheet of one draw slot on one day
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date      string             `bson:"date" json:"date"`
	Slot      DrawSlot           `bson:"slot" json:"slot"`
	SlotOrder int                `bson:"slotOrder" json:"-"`
	Rows      []SaleRow          `bson:"rows" json:"rows"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReportKey identifies a saved report
type ReportKey struct {
	Date string   `bson:"date" json:"date"`
	Slot DrawSlot `bson:"slot" json:"slot"`
}

// Key returns the report's (date, slot) key
func (r *Report) Key() ReportKey {
	return ReportKey{Date: r.Date, Slot: r.Slot}
}

// After reports whether k is a later draw than other
func (k ReportKey) After(other ReportKey) bool {
	if k.Date != other.Date {
		return k.Date > other.Date
	}
	return k.Slot.Order() > other.Slot.Order()
}

// Clone returns an independent copy of the report
func (r *Report) Clone() *Report {
	c := *r
	c.Rows = CloneRows(r.Rows)
	return &c
}
