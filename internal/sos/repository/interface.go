package repository

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateAlert(ctx context.Context, opts CreateAlertOptions) (model.SOSAlert, error)
	// ListAlertsByPatient returns the patient's alerts sorted newest first.
	ListAlertsByPatient(ctx context.Context, patientID string) ([]model.SOSAlert, error)
}
