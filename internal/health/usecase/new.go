package usecase

import (
	"goldensage/internal/health"
	"goldensage/internal/health/repository"
	"goldensage/internal/notification"
	"goldensage/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	patients health.PatientDirectory
	tasks    health.TaskLister
	notifier notification.UseCase

	// calendar may be nil when no credentials are configured.
	calendar   health.CalendarClient
	calendarID string
}

var _ health.UseCase = (*implUseCase)(nil)

// New creates the health use case. calendar is optional; pass nil to
// skip event creation on booking.
func New(
	l log.Logger,
	repo repository.Repository,
	patients health.PatientDirectory,
	tasks health.TaskLister,
	notifier notification.UseCase,
	calendar health.CalendarClient,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		patients:   patients,
		tasks:      tasks,
		notifier:   notifier,
		calendar:   calendar,
		calendarID: calendarID,
	}
}
