package task

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add creates a task for today.
	Add(ctx context.Context, patientID string, input AddTaskInput) (TaskOutput, error)
	// Toggle sets the completion state of a task owned by the patient.
	Toggle(ctx context.Context, patientID, taskID string, done bool) error
	// ListToday returns the patient's tasks dated today.
	ListToday(ctx context.Context, patientID string) ([]model.Task, error)
	// AddReminder persists a voice reminder as a task for today.
	AddReminder(ctx context.Context, patientID, description string) error
}
