package user

import "goldensage/internal/model"

// SignupGuardianInput is the input for guardian registration.
type SignupGuardianInput struct {
	Email    string
	Password string
}

// SignupPatientInput is the input for patient registration by a guardian.
type SignupPatientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// SignupUnityInput is the input for unity-hub registration.
type SignupUnityInput struct {
	Email    string
	Password string
	Kind     string // "individual" or "ngo"
	Name     string
}

// LoginInput is the input for all login operations.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput carries the session token for a signed-in account.
type AuthOutput struct {
	Token  string
	UserID string
	Role   model.Role
	Name   string
}

// PatientOutput wraps a created patient.
type PatientOutput struct {
	Patient model.Patient
}

// ProfileOutput is the current account's profile, one pointer set per role.
type ProfileOutput struct {
	Role     model.Role
	Guardian *model.Guardian
	Patient  *model.Patient
	Unity    *model.UnityUser
}
