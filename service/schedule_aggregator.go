package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"portal-server/models/rooms"
	"portal-server/util"
)

// roomSeparator joins room identifiers inside RawHourSlot.RoomsCsv.
const roomSeparator = ", "

// ScheduleAggregator turns the backend's per-day, per-room-type schedule into
// upcoming hour slots per day, merging room types that share an hour-index.
type ScheduleAggregator struct {
	location *time.Location
}

// NewScheduleAggregator interprets raw dates and times in loc (UTC when nil).
func NewScheduleAggregator(loc *time.Location) *ScheduleAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleAggregator{location: loc}
}

// Aggregate keeps only slots ending strictly after now and drops days left without slots.
// Output days follow input order; slots within a day follow ascending hour-index.
// Any unparsable date or time fails the whole call with a *MalformedScheduleError.
func (a *ScheduleAggregator) Aggregate(rawDays []rooms.RawDaySchedule, now time.Time) ([]rooms.DayAvailability, error) {
	result := make([]rooms.DayAvailability, 0, len(rawDays))

	for _, day := range rawDays {
		if err := validate.Struct(day); err != nil {
			return nil, &MalformedScheduleError{Date: day.Date, Err: err}
		}
		date, err := util.ParseCalendarDate(day.Date, a.location)
		if err != nil {
			return nil, &MalformedScheduleError{Date: day.Date, Err: err}
		}

		hours := make(map[string]*rooms.HourSlotAvailability)
		for _, block := range day.RoomTypeBlocks {
			for _, hIndex := range sortedHourIndices(block.HourSlots) {
				hour := block.HourSlots[hIndex]

				from, to, err := a.slotWindow(day.Date, hour)
				if err != nil {
					return nil, &MalformedScheduleError{
						Date:      day.Date,
						RoomType:  block.RoomTypeName,
						HourIndex: hIndex,
						Err:       err,
					}
				}
				if !to.After(now) {
					continue
				}

				// the first block to reach an hour-index fixes its window
				slot, ok := hours[hIndex]
				if !ok {
					slot = &rooms.HourSlotAvailability{
						HourIndex:   hIndex,
						From:        from,
						To:          to,
						RoomsByType: make(map[string][]string),
					}
					hours[hIndex] = slot
				}
				slot.RoomsByType[block.RoomTypeName] = splitRooms(hour.RoomsCsv)
			}
		}

		if len(hours) == 0 {
			continue
		}

		slots := make([]rooms.HourSlotAvailability, 0, len(hours))
		for _, hIndex := range sortedKeys(hours) {
			slots = append(slots, *hours[hIndex])
		}
		result = append(result, rooms.DayAvailability{Date: date, HourSlots: slots})
	}

	return result, nil
}

func (a *ScheduleAggregator) slotWindow(date string, hour rooms.RawHourSlot) (time.Time, time.Time, error) {
	if err := validate.Struct(hour); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, err := util.CombineDateTime(date, hour.From, a.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := util.CombineDateTime(date, hour.To, a.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func splitRooms(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, roomSeparator)
}

func sortedHourIndices(slots rooms.RawHourSlots) []string {
	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	sortHourIndices(keys)
	return keys
}

func sortedKeys(hours map[string]*rooms.HourSlotAvailability) []string {
	keys := make([]string, 0, len(hours))
	for k := range hours {
		keys = append(keys, k)
	}
	sortHourIndices(keys)
	return keys
}

// sortHourIndices orders numeric indices numerically, ahead of any non-numeric ones.
func sortHourIndices(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
