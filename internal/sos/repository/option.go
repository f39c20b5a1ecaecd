package repository

import "goldensage/internal/model"

// CreateAlertOptions carries the fields for a new sos_alert document.
type CreateAlertOptions struct {
	AlertID     string
	PatientID   string
	PatientName string
	GuardianID  string
	Status      string
	Location    model.Location
	Message     string
}
