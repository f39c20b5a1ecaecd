package user

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Guardian accounts
	SignupGuardian(ctx context.Context, input SignupGuardianInput) (AuthOutput, error)
	LoginGuardian(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Patient accounts are created by their guardian.
	SignupPatient(ctx context.Context, guardianID string, input SignupPatientInput) (PatientOutput, error)
	LoginPatient(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Unity-hub accounts (volunteers, NGOs)
	SignupUnity(ctx context.Context, input SignupUnityInput) (AuthOutput, error)
	LoginUnity(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Profile returns the current account's profile.
	Profile(ctx context.Context, role model.Role, userID string) (ProfileOutput, error)
	// ListPatients returns the guardian's patients.
	ListPatients(ctx context.Context, guardianID string) ([]model.Patient, error)
}
