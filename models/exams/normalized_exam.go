package exams

import "time"

// NormalizedExam is a validated exam. Date is nil when the exam is still TBD.
type NormalizedExam struct {
	Title                 string     `json:"title"`
	Kind                  string     `json:"kind"`
	Date                  *time.Time `json:"date"`
	RegistrationTimestamp time.Time  `json:"registration_timestamp"`
	AllowedAids           []string   `json:"allowed_aids"`
	Rooms                 string     `json:"rooms"`
	Seat                  string     `json:"seat"`
	Note                  string     `json:"note"`
	Examiners             string     `json:"examiners"`
	Program               string     `json:"program"`
}

// IsScheduled reports whether the exam has a resolved date.
func (e NormalizedExam) IsScheduled() bool {
	return e.Date != nil
}
