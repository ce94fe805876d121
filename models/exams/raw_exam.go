package exams

// RawExam is one exam record as returned by the backend.
// Date and Time are empty when the exam is not scheduled yet.
type RawExam struct {
	Title            string `json:"titel"`
	Kind             string `json:"pruefungs_art"`
	Date             string `json:"exm_date"`
	Time             string `json:"exam_time"`
	RegistrationDate string `json:"anm_date" validate:"required"`
	RegistrationTime string `json:"anm_time" validate:"required"`
	Rooms            string `json:"exam_rooms"`
	Seat             string `json:"exam_seat"`
	Note             string `json:"anmerkung"`
	Examiners        string `json:"pruefer_namen"`
	Program          string `json:"stg"`
	AllowedAidsRaw   string `json:"hilfsmittel"`
}
