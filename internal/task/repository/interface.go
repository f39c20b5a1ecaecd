package repository

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateTask(ctx context.Context, opts CreateTaskOptions) (model.Task, error)
	UpdateTaskCompletion(ctx context.Context, taskID, patientID string, done bool) error
	ListTasks(ctx context.Context, patientID, date string) ([]model.Task, error)
}
