package repository

// CreateGuardianOptions carries the fields for a new guardian document.
// Password is the bcrypt hash, never the plain text.
type CreateGuardianOptions struct {
	Email    string
	Password string
}

// CreatePatientOptions carries the fields for a new patient document.
type CreatePatientOptions struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	GuardianID string
}

// CreateUnityUserOptions carries the fields for a new unity-hub document.
type CreateUnityUserOptions struct {
	Email    string
	Password string
	Kind     string
	Name     string
}
