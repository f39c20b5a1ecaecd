package repository

// CreateNotificationOptions carries the fields for a new notification document.
type CreateNotificationOptions struct {
	UserID    string
	Type      string
	Title     string
	Message   string
	Priority  string
	PatientID string
	AlertID   string
}
