package notification

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Notify appends a notification to a user's feed.
	Notify(ctx context.Context, input NotifyInput) error
	// Feed returns the user's notifications, newest first.
	Feed(ctx context.Context, userID string) ([]model.Notification, error)
}
