package models

import "time"

// Session is an operator's open sheet for one draw slot
type Session struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Slot      DrawSlot  `json:"slot"`
	Rows      []SaleRow `json:"rows"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OpenSessionRequest opens a session for a date and slot
type OpenSessionRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// ChangeSlotRequest moves a session to another slot of the same day
type ChangeSlotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// AddRowRequest adds a customer row
type AddRowRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Multiplier   int    `json:"multiplier"`
}

// RowPatch updates the operator input of a row; nil fields are left unchanged
type RowPatch struct {
	CustomerName   *string `json:"customerName"`
	Multiplier     *int    `json:"multiplier"`
	PurchaseRanges *string `json:"purchaseRanges"`
	UnsoldRaw      *string `json:"unsoldRaw"`
}

// SearchUnsoldRequest filters unsold entries by customer name and a comma separated ticket list
type SearchUnsoldRequest struct {
	CustomerName string `json:"customerName"`
	Numbers      string `json:"numbers"`
}

// UnsoldMatch is one search hit
type UnsoldMatch struct {
	CustomerName string `json:"customerName"`
	Multiplier   int    `json:"multiplier"`
	Ticket       string `json:"ticket"`
	IsValid      bool   `json:"isValid"`
}
