package sos

import "goldensage/internal/model"

// Alert statuses.
const (
	StatusActive   = "active"
	StatusResolved = "resolved"
)

// TriggerOutput wraps the persisted alert.
type TriggerOutput struct {
	Alert model.SOSAlert
}

// ListOutput is a patient's alert history with the active count.
type ListOutput struct {
	Alerts      []model.SOSAlert
	ActiveCount int
}
