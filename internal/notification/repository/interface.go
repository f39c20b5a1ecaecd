package repository

import (
	"context"

	"goldensage/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateNotification(ctx context.Context, opts CreateNotificationOptions) (model.Notification, error)
	// ListNotifications returns the user's notifications sorted newest first.
	ListNotifications(ctx context.Context, userID string) ([]model.Notification, error)
}
