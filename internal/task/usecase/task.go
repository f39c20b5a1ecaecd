package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"goldensage/internal/model"
	"goldensage/internal/task"
	repo "goldensage/internal/task/repository"
)

const dateLayout = "2006-01-02"

// ReminderTitle is the fixed title for voice reminders.
const ReminderTitle = "Reminder"

func today() string {
	return time.Now().UTC().Format(dateLayout)
}

// Add creates a task for today.
func (uc *implUseCase) Add(ctx context.Context, patientID string, input task.AddTaskInput) (task.TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.TaskOutput{}, task.ErrTitleRequired
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		PatientID:   patientID,
		Title:       title,
		Description: input.Description,
		Date:        today(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: created}, nil
}

// AddReminder persists a voice reminder as a task for today, keeping the raw
// utterance as the description.
func (uc *implUseCase) AddReminder(ctx context.Context, patientID, description string) error {
	_, err := uc.Add(ctx, patientID, task.AddTaskInput{
		Title:       ReminderTitle,
		Description: description,
	})
	return err
}

// Toggle sets the completion state of a task owned by the patient.
func (uc *implUseCase) Toggle(ctx context.Context, patientID, taskID string, done bool) error {
	if err := uc.repo.UpdateTaskCompletion(ctx, taskID, patientID, done); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Toggle UpdateTaskCompletion: %v", err)
		return err
	}
	return nil
}

// ListToday returns the patient's tasks dated today.
func (uc *implUseCase) ListToday(ctx context.Context, patientID string) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, patientID, today())
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListToday ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
