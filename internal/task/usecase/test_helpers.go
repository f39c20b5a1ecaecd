package usecase

import (
	"context"

	"goldensage/internal/model"
	"goldensage/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	created   []repository.CreateTaskOptions
	createErr error

	updates   []toggleCall
	updateErr error

	tasks   []model.Task
	listErr error
}

type toggleCall struct {
	taskID    string
	patientID string
	done      bool
}

func (m *mockRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	m.created = append(m.created, opts)
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	return model.Task{
		PatientID:   opts.PatientID,
		Title:       opts.Title,
		Description: opts.Description,
		Date:        opts.Date,
	}, nil
}

func (m *mockRepository) UpdateTaskCompletion(ctx context.Context, taskID, patientID string, done bool) error {
	m.updates = append(m.updates, toggleCall{taskID: taskID, patientID: patientID, done: done})
	return m.updateErr
}

func (m *mockRepository) ListTasks(ctx context.Context, patientID, date string) ([]model.Task, error) {
	return m.tasks, m.listErr
}
