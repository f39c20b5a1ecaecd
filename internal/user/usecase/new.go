package usecase

import (
	"goldensage/internal/user"
	"goldensage/internal/user/repository"
	"goldensage/pkg/log"
	"goldensage/pkg/scope"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	auth scope.Manager
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a user use case backed by the given repository and token manager.
func New(l log.Logger, repo repository.Repository, auth scope.Manager) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		auth: auth,
	}
}
