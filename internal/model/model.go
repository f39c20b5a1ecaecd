package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Role is an authenticated account type.
type Role string

const (
	RolePatient  Role = "patient"
	RoleGuardian Role = "guardian"
	RoleUnity    Role = "unity"
)

// ParseRole maps a raw role string to a Role. Unknown values default to
// patient, which carries the most restrictive navigation surface.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleGuardian:
		return RoleGuardian
	case RoleUnity:
		return RoleUnity
	default:
		return RolePatient
	}
}
