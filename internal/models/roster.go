package models

import "time"

// RosterEntry is a customer and multiplier used on a given day
type RosterEntry struct {
	CustomerName string `bson:"customerName" json:"customerName"`
	Multiplier   int    `bson:"multiplier" json:"multiplier"`
}

// Roster lists every (customer, multiplier) pair saved on a day; it seeds new sessions
type Roster struct {
	Date      string        `bson:"date" json:"date"`
	Entries   []RosterEntry `bson:"entries" json:"entries"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
