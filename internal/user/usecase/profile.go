package usecase

import (
	"context"
	"errors"

	"goldensage/internal/model"
	"goldensage/internal/user"
	repo "goldensage/internal/user/repository"
)

// Profile returns the profile for the authenticated account.
func (uc *implUseCase) Profile(ctx context.Context, role model.Role, userID string) (user.ProfileOutput, error) {
	switch role {
	case model.RoleGuardian:
		guardian, err := uc.repo.GetGuardianByID(ctx, userID)
		if err != nil {
			return user.ProfileOutput{}, uc.mapLookupErr(ctx, "GetGuardianByID", err)
		}
		guardian.Password = ""
		return user.ProfileOutput{Role: role, Guardian: &guardian}, nil

	case model.RoleUnity:
		unity, err := uc.repo.GetUnityUserByID(ctx, userID)
		if err != nil {
			return user.ProfileOutput{}, uc.mapLookupErr(ctx, "GetUnityUserByID", err)
		}
		unity.Password = ""
		return user.ProfileOutput{Role: role, Unity: &unity}, nil

	default:
		patient, err := uc.repo.GetPatientByID(ctx, userID)
		if err != nil {
			return user.ProfileOutput{}, uc.mapLookupErr(ctx, "GetPatientByID", err)
		}
		patient.Password = ""
		return user.ProfileOutput{Role: model.RolePatient, Patient: &patient}, nil
	}
}

// ListPatients returns all patients linked to the guardian.
func (uc *implUseCase) ListPatients(ctx context.Context, guardianID string) ([]model.Patient, error) {
	patients, err := uc.repo.ListPatientsByGuardian(ctx, guardianID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPatients ListPatientsByGuardian: %v", err)
		return nil, err
	}
	for i := range patients {
		patients[i].Password = ""
	}
	return patients, nil
}

func (uc *implUseCase) mapLookupErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return user.ErrUserNotFound
	}
	uc.l.Errorf(ctx, "uc.Profile %s: %v", op, err)
	return err
}
