package types

type SignupRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	NPIID     string `json:"npi_id"`
	Specialty string `json:"specialty"`
	Location  string `json:"location,omitempty"`
	Role      string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchRequest submits one assistant query. PatientID and PanelOpen feed
// the system prompt: the patient is only named when the detail panel is
// open.
type SearchRequest struct {
	Query     string `json:"query"`
	PatientID string `json:"patient_id,omitempty"`
	PanelOpen bool   `json:"panel_open,omitempty"`
}

type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Project     string  `json:"project,omitempty"`
	Labels      string  `json:"labels,omitempty"`
	Priority    int     `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type AppointmentRequest struct {
	PatientID       string `json:"patient_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Reason          string `json:"reason,omitempty"`
	PatientCategory string `json:"patient_category,omitempty"`
	Type            string `json:"type,omitempty"`
}
