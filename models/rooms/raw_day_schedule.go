package rooms

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RawDaySchedule is one element of the backend's free-rooms list.
type RawDaySchedule struct {
	Date           string             `json:"datum" validate:"required"`
	RoomTypeBlocks []RawRoomTypeBlock `json:"rtypes"`
}

// RawRoomTypeBlock groups the hour slots of one room type for a day.
type RawRoomTypeBlock struct {
	RoomTypeName string       `json:"raumtyp"`
	HourSlots    RawHourSlots `json:"stunden"`
}

// RawHourSlot holds the local window and the comma-joined free rooms of one hour-index.
type RawHourSlot struct {
	From     string `json:"von" validate:"required"`
	To       string `json:"bis" validate:"required"`
	RoomsCsv string `json:"raeume"`
}

// RawHourSlots maps hour-index to slot.
type RawHourSlots map[string]RawHourSlot

// UnmarshalJSON accepts both an object keyed by hour-index and a plain array,
// which is what the backend emits when its indices happen to be sequential.
func (h *RawHourSlots) UnmarshalJSON(data []byte) error {
	var byIndex map[string]RawHourSlot
	if err := json.Unmarshal(data, &byIndex); err == nil {
		*h = byIndex
		return nil
	}

	var list []*RawHourSlot
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("stunden is neither an object nor an array: %w", err)
	}

	out := make(RawHourSlots, len(list))
	for i, slot := range list {
		// null entries pad the array where an index is missing
		if slot == nil {
			continue
		}
		out[strconv.Itoa(i)] = *slot
	}
	*h = out
	return nil
}
