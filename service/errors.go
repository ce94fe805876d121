package services

import "fmt"

// MalformedScheduleError reports a free-rooms day, room type or hour slot whose
// date or time fields cannot be turned into a timestamp.
type MalformedScheduleError struct {
	Date      string
	RoomType  string
	HourIndex string
	Err       error
}

func (e *MalformedScheduleError) Error() string {
	return fmt.Sprintf("malformed room schedule (day=%q room_type=%q hour=%q): %v",
		e.Date, e.RoomType, e.HourIndex, e.Err)
}

func (e *MalformedScheduleError) Unwrap() error { return e.Err }

// MalformedExamError reports an exam record that failed validation.
// Index is the record's position in the raw list.
type MalformedExamError struct {
	Index int
	Title string
	Field string
	Err   error
}

func (e *MalformedExamError) Error() string {
	return fmt.Sprintf("malformed exam #%d %q (field %s): %v", e.Index, e.Title, e.Field, e.Err)
}

func (e *MalformedExamError) Unwrap() error { return e.Err }
