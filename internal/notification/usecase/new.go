package usecase

import (
	"goldensage/internal/notification"
	"goldensage/internal/notification/repository"
	"goldensage/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

var _ notification.UseCase = (*implUseCase)(nil)

// New creates a notification use case backed by the given repository.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
