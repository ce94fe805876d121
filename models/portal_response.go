package models

import (
	"encoding/json"

	"portal-server/models/exams"
	"portal-server/models/rooms"
)

// PortalEnvelope is the outer object of every backend response.
// Data is an error message string when Status is non-zero.
type PortalEnvelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// FreeRoomsResponse is the data block of the "rooms" method.
type FreeRoomsResponse struct {
	Rooms []rooms.RawDaySchedule `json:"rooms"`
}

// ExamsResponse is the data block of the "exams" method.
type ExamsResponse struct {
	Exams []exams.RawExam `json:"exams"`
}
