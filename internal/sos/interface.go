package sos

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Trigger raises an emergency alert for the patient: persists the
	// alert, notifies the guardian, flags the patient and fans out SMS.
	Trigger(ctx context.Context, patientID string) (TriggerOutput, error)
	// TriggerAlert is the narrow form used by the assistant dispatch.
	TriggerAlert(ctx context.Context, patientID string) error
	// List returns the patient's alerts newest first with the active count.
	List(ctx context.Context, patientID string) (ListOutput, error)
}

// PatientDirectory is the slice of the user store the SOS path needs.
type PatientDirectory interface {
	GetPatientByID(ctx context.Context, id string) (model.Patient, error)
	SetPatientEmergency(ctx context.Context, patientID string, emergency bool) error
}
