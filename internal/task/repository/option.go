package repository

// CreateTaskOptions carries the fields for a new task document.
type CreateTaskOptions struct {
	PatientID   string
	Title       string
	Description string
	Date        string // YYYY-MM-DD
}
