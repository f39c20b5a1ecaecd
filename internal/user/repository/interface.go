package repository

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Guardians
	CreateGuardian(ctx context.Context, opts CreateGuardianOptions) (model.Guardian, error)
	GetGuardianByEmail(ctx context.Context, email string) (model.Guardian, error)
	GetGuardianByID(ctx context.Context, id string) (model.Guardian, error)

	// Patients
	CreatePatient(ctx context.Context, opts CreatePatientOptions) (model.Patient, error)
	GetPatientByEmail(ctx context.Context, email string) (model.Patient, error)
	GetPatientByID(ctx context.Context, id string) (model.Patient, error)
	ListPatientsByGuardian(ctx context.Context, guardianID string) ([]model.Patient, error)
	SetPatientEmergency(ctx context.Context, patientID string, emergency bool) error
	// FindEmergencyPatient returns one of the guardian's patients with the
	// emergency flag set, or ErrNotFound when none is flagged.
	FindEmergencyPatient(ctx context.Context, guardianID string) (model.Patient, error)

	// Unity users
	CreateUnityUser(ctx context.Context, opts CreateUnityUserOptions) (model.UnityUser, error)
	GetUnityUserByEmail(ctx context.Context, email string) (model.UnityUser, error)
	GetUnityUserByID(ctx context.Context, id string) (model.UnityUser, error)
}
