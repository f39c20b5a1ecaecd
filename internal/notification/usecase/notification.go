package usecase

import (
	"context"

	"goldensage/internal/model"
	"goldensage/internal/notification"
	repo "goldensage/internal/notification/repository"
)

// Notify appends a notification to the user's feed.
func (uc *implUseCase) Notify(ctx context.Context, input notification.NotifyInput) error {
	priority := input.Priority
	if priority == "" {
		priority = notification.PriorityNormal
	}

	_, err := uc.repo.CreateNotification(ctx, repo.CreateNotificationOptions{
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Priority:  priority,
		PatientID: input.PatientID,
		AlertID:   input.AlertID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Notify CreateNotification: %v", err)
		return err
	}
	return nil
}

// Feed returns the user's notifications, newest first.
func (uc *implUseCase) Feed(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := uc.repo.ListNotifications(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Feed ListNotifications: %v", err)
		return nil, err
	}
	return notifications, nil
}
