package repository

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListVitals returns the patient's vitals newest first, up to limit.
	// limit <= 0 means no limit.
	ListVitals(ctx context.Context, patientID string, limit int64) ([]model.Vital, error)
	ListMedications(ctx context.Context, patientID string) ([]model.Medication, error)
	// GetMedication is scoped to the owning patient.
	GetMedication(ctx context.Context, medicationID, patientID string) (model.Medication, error)
	ListAppointments(ctx context.Context, patientID string, opts ListAppointmentsOptions) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, opts CreateAppointmentOptions) (model.Appointment, error)
}
