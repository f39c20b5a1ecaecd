package http

import (
	"time"

	"goldensage/internal/model"
	"goldensage/internal/task"
)

// --- Request DTOs ---

type addReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

func (r addReq) validate() error { return nil }

func (r addReq) toInput() task.AddTaskInput {
	return task.AddTaskInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

type toggleReq struct {
	ID          string `json:"-"` // populated from URI param
	IsCompleted bool   `json:"is_completed"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID.Hex(),
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out}
}
