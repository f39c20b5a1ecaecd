package task

import "goldensage/internal/model"

// AddTaskInput is the input for creating a task.
type AddTaskInput struct {
	Title       string
	Description string
}

// TaskOutput wraps a persisted task.
type TaskOutput struct {
	Task model.Task
}
