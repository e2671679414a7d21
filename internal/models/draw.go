package models

import (
	"fmt"
	"strings"
)

// DrawSlot identifies one of the scheduled draws within a day
type DrawSlot string

const (
	DrawSlotMorning DrawSlot = "Morning"
	DrawSlotNoon    DrawSlot = "Noon"
	DrawSlotEvening DrawSlot = "Evening"
)

// DrawSlots lists the slots in the order they are drawn
var DrawSlots = []DrawSlot{DrawSlotMorning, DrawSlotNoon, DrawSlotEvening}

// resultLabels are the draw times printed on result sheets
var resultLabels = map[DrawSlot]string{
	DrawSlotMorning: "1PM",
	DrawSlotNoon:    "6PM",
	DrawSlotEvening: "8PM",
}

// ParseDrawSlot accepts a slot name or its result-sheet label, case-insensitively
func ParseDrawSlot(s string) (DrawSlot, error) {
	s = strings.TrimSpace(s)
	for _, slot := range DrawSlots {
		if strings.EqualFold(s, string(slot)) || strings.EqualFold(s, resultLabels[slot]) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown draw slot %q", s)
}

// ResultLabel returns the draw time printed on the result sheet ("1PM", "6PM", "8PM")
func (s DrawSlot) ResultLabel() string {
	return resultLabels[s]
}

// Order returns the position of the slot within the day, -1 if unknown
func (s DrawSlot) Order() int {
	for i, slot := range DrawSlots {
		if slot == s {
			return i
		}
	}
	return -1
}
