package task

import "errors"

var (
	ErrTitleRequired = errors.New("task title is required")
	ErrTaskNotFound  = errors.New("task not found")
)
