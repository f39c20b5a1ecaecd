package health

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrNotYourPatient     = errors.New("patient does not belong to this guardian")
	ErrMedicationNotFound = errors.New("medication not found")
)
