package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"goldensage/internal/model"
	"goldensage/internal/user"
	repo "goldensage/internal/user/repository"
	"goldensage/pkg/scope"
)

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *implUseCase) issueToken(userID string, role model.Role) (string, error) {
	return uc.auth.Issue(scope.Payload{UserID: userID, Role: string(role)})
}

// SignupGuardian registers a guardian account and signs it in.
func (uc *implUseCase) SignupGuardian(ctx context.Context, input user.SignupGuardianInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := uc.repo.GetGuardianByEmail(ctx, email); err == nil {
		return user.AuthOutput{}, user.ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.SignupGuardian GetGuardianByEmail: %v", err)
		return user.AuthOutput{}, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupGuardian hashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	guardian, err := uc.repo.CreateGuardian(ctx, repo.CreateGuardianOptions{
		Email:    email,
		Password: hash,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupGuardian CreateGuardian: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.issueToken(guardian.ID.Hex(), model.RoleGuardian)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupGuardian issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{
		Token:  token,
		UserID: guardian.ID.Hex(),
		Role:   model.RoleGuardian,
	}, nil
}

// LoginGuardian signs a guardian in with email and password.
func (uc *implUseCase) LoginGuardian(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	guardian, err := uc.repo.GetGuardianByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return user.AuthOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.LoginGuardian GetGuardianByEmail: %v", err)
		return user.AuthOutput{}, err
	}
	if !checkPassword(guardian.Password, input.Password) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.issueToken(guardian.ID.Hex(), model.RoleGuardian)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoginGuardian issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{
		Token:  token,
		UserID: guardian.ID.Hex(),
		Role:   model.RoleGuardian,
	}, nil
}

// SignupPatient registers a patient under the calling guardian.
func (uc *implUseCase) SignupPatient(ctx context.Context, guardianID string, input user.SignupPatientInput) (user.PatientOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := uc.repo.GetPatientByEmail(ctx, email); err == nil {
		return user.PatientOutput{}, user.ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.SignupPatient GetPatientByEmail: %v", err)
		return user.PatientOutput{}, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupPatient hashPassword: %v", err)
		return user.PatientOutput{}, err
	}

	patient, err := uc.repo.CreatePatient(ctx, repo.CreatePatientOptions{
		Name:       input.Name,
		Email:      email,
		Password:   hash,
		Phone:      input.Phone,
		GuardianID: guardianID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupPatient CreatePatient: %v", err)
		return user.PatientOutput{}, err
	}

	return user.PatientOutput{Patient: patient}, nil
}

// LoginPatient signs a patient in with email and password.
func (uc *implUseCase) LoginPatient(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	patient, err := uc.repo.GetPatientByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return user.AuthOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.LoginPatient GetPatientByEmail: %v", err)
		return user.AuthOutput{}, err
	}
	if !checkPassword(patient.Password, input.Password) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.issueToken(patient.ID.Hex(), model.RolePatient)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoginPatient issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{
		Token:  token,
		UserID: patient.ID.Hex(),
		Role:   model.RolePatient,
		Name:   patient.Name,
	}, nil
}

// SignupUnity registers a unity-hub account and signs it in.
func (uc *implUseCase) SignupUnity(ctx context.Context, input user.SignupUnityInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := uc.repo.GetUnityUserByEmail(ctx, email); err == nil {
		return user.AuthOutput{}, user.ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.SignupUnity GetUnityUserByEmail: %v", err)
		return user.AuthOutput{}, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupUnity hashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	unity, err := uc.repo.CreateUnityUser(ctx, repo.CreateUnityUserOptions{
		Email:    email,
		Password: hash,
		Kind:     input.Kind,
		Name:     input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupUnity CreateUnityUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.issueToken(unity.ID.Hex(), model.RoleUnity)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupUnity issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{
		Token:  token,
		UserID: unity.ID.Hex(),
		Role:   model.RoleUnity,
		Name:   unity.Name,
	}, nil
}

// LoginUnity signs a unity-hub account in with email and password.
func (uc *implUseCase) LoginUnity(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	unity, err := uc.repo.GetUnityUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return user.AuthOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.LoginUnity GetUnityUserByEmail: %v", err)
		return user.AuthOutput{}, err
	}
	if !checkPassword(unity.Password, input.Password) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.issueToken(unity.ID.Hex(), model.RoleUnity)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoginUnity issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{
		Token:  token,
		UserID: unity.ID.Hex(),
		Role:   model.RoleUnity,
		Name:   unity.Name,
	}, nil
}
