package usecase

import (
	"goldensage/internal/notification"
	"goldensage/internal/sos"
	"goldensage/internal/sos/repository"
	"goldensage/pkg/log"
	"goldensage/pkg/sms"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	patients sos.PatientDirectory
	notifier notification.UseCase

	// sender may be nil when SMS dispatch is disabled.
	sender          sms.Sender
	hospitalNumbers []string
}

var _ sos.UseCase = (*implUseCase)(nil)

// New creates the SOS use case. sender is optional; pass nil to skip
// SMS fan-out.
func New(
	l log.Logger,
	repo repository.Repository,
	patients sos.PatientDirectory,
	notifier notification.UseCase,
	sender sms.Sender,
	hospitalNumbers []string,
) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		patients:        patients,
		notifier:        notifier,
		sender:          sender,
		hospitalNumbers: hospitalNumbers,
	}
}
