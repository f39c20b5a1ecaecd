package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"goldensage/internal/task"
	"goldensage/internal/task/repository"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a task dated today", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		out, err := uc.Add(ctx, "p1", task.AddTaskInput{Title: "Walk", Description: "Evening walk"})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("CreateTask called %d times, want 1", len(repo.created))
		}
		wantDate := time.Now().UTC().Format("2006-01-02")
		if repo.created[0].Date != wantDate {
			t.Errorf("date = %q, want %q", repo.created[0].Date, wantDate)
		}
		if out.Task.IsCompleted {
			t.Error("new task must start incomplete")
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		_, err := uc.Add(ctx, "p1", task.AddTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("Add() error = %v, want ErrTitleRequired", err)
		}
		if len(repo.created) != 0 {
			t.Error("CreateTask must not be called on invalid input")
		}
	})
}

func TestAddReminder(t *testing.T) {
	repo := &mockRepository{}
	uc := New(repo, &mockLogger{})

	if err := uc.AddReminder(context.Background(), "p1", "remind me to drink water"); err != nil {
		t.Fatalf("AddReminder() error = %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("CreateTask called %d times, want exactly 1", len(repo.created))
	}
	got := repo.created[0]
	if got.Title != ReminderTitle {
		t.Errorf("title = %q, want %q", got.Title, ReminderTitle)
	}
	if got.Description != "remind me to drink water" {
		t.Errorf("description = %q, want the raw utterance", got.Description)
	}
	if got.PatientID != "p1" {
		t.Errorf("patient = %q, want p1", got.PatientID)
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes the update to the owning patient", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		if err := uc.Toggle(ctx, "p1", "t1", true); err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}
		if len(repo.updates) != 1 {
			t.Fatalf("UpdateTaskCompletion called %d times", len(repo.updates))
		}
		if repo.updates[0].patientID != "p1" || repo.updates[0].taskID != "t1" || !repo.updates[0].done {
			t.Errorf("unexpected update call %+v", repo.updates[0])
		}
	})

	t.Run("maps missing task to ErrTaskNotFound", func(t *testing.T) {
		repo := &mockRepository{updateErr: repository.ErrNotFound}
		uc := New(repo, &mockLogger{})

		if err := uc.Toggle(ctx, "p1", "gone", false); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Toggle() error = %v, want ErrTaskNotFound", err)
		}
	})
}
