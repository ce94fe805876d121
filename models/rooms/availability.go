package rooms

import "time"

// DayAvailability is one calendar day with at least one upcoming hour slot.
type DayAvailability struct {
	Date      time.Time              `json:"date"`
	HourSlots []HourSlotAvailability `json:"hour_slots"`
}

// HourSlotAvailability lists the free rooms per room type for one hour window.
type HourSlotAvailability struct {
	HourIndex   string              `json:"hour_index"`
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
	RoomsByType map[string][]string `json:"rooms_by_type"`
}

// RoomCount returns the number of listed rooms across all room types.
func (h HourSlotAvailability) RoomCount() int {
	n := 0
	for _, rooms := range h.RoomsByType {
		n += len(rooms)
	}
	return n
}
