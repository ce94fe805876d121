package services

import (
	"strings"
	"time"

	"portal-server/models/exams"
	"portal-server/util"
)

// ExamNormalizer validates raw exam records and keeps the ones still ahead.
type ExamNormalizer struct {
	location *time.Location
}

// NewExamNormalizer interprets raw dates and times in loc (UTC when nil).
func NewExamNormalizer(loc *time.Location) *ExamNormalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &ExamNormalizer{location: loc}
}

// Normalize returns the exams that are TBD or dated strictly after now, in input order.
// One malformed record fails the whole call with a *MalformedExamError.
func (n *ExamNormalizer) Normalize(rawExams []exams.RawExam, now time.Time) ([]exams.NormalizedExam, error) {
	out := make([]exams.NormalizedExam, 0, len(rawExams))

	for i, raw := range rawExams {
		exam, err := n.normalizeOne(i, raw)
		if err != nil {
			return nil, err
		}
		if exam.Date != nil && !exam.Date.After(now) {
			continue
		}
		out = append(out, exam)
	}

	return out, nil
}

func (n *ExamNormalizer) normalizeOne(index int, raw exams.RawExam) (exams.NormalizedExam, error) {
	fail := func(field string, err error) (exams.NormalizedExam, error) {
		return exams.NormalizedExam{}, &MalformedExamError{Index: index, Title: raw.Title, Field: field, Err: err}
	}

	var date *time.Time
	if strings.TrimSpace(raw.Date) != "" && strings.TrimSpace(raw.Time) != "" {
		t, err := util.CombineDateTime(raw.Date, raw.Time, n.location)
		if err != nil {
			return fail("exm_date", err)
		}
		date = &t
	}

	if err := validate.Struct(raw); err != nil {
		return fail(firstInvalidField(err), err)
	}
	registration, err := util.CombineDateTime(raw.RegistrationDate, raw.RegistrationTime, n.location)
	if err != nil {
		return fail("anm_date", err)
	}

	aids, err := parseAllowedAids(raw.AllowedAidsRaw)
	if err != nil {
		return fail("hilfsmittel", err)
	}

	return exams.NormalizedExam{
		Title:                 raw.Title,
		Kind:                  raw.Kind,
		Date:                  date,
		RegistrationTimestamp: registration,
		AllowedAids:           aids,
		Rooms:                 raw.Rooms,
		Seat:                  raw.Seat,
		Note:                  raw.Note,
		Examiners:             raw.Examiners,
		Program:               raw.Program,
	}, nil
}
