package repository

// ListAppointmentsOptions controls sorting and truncation.
// Limit <= 0 means no limit.
type ListAppointmentsOptions struct {
	Ascending bool
	Limit     int64
}

// CreateAppointmentOptions carries the fields for a new appointment document.
type CreateAppointmentOptions struct {
	PatientID  string
	DoctorName string
	Specialty  string
	Date       string
	Time       string
	Status     string
}
