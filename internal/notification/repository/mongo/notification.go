package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goldensage/internal/model"
	"goldensage/internal/notification/repository"
)

func (r *implRepository) CreateNotification(ctx context.Context, opts repository.CreateNotificationOptions) (model.Notification, error) {
	doc := model.Notification{
		UserID:    opts.UserID,
		Type:      opts.Type,
		Title:     opts.Title,
		Message:   opts.Message,
		Priority:  opts.Priority,
		PatientID: opts.PatientID,
		AlertID:   opts.AlertID,
		Timestamp: time.Now().UTC(),
	}

	result, err := r.db.Collection(collectionNotifications).InsertOne(ctx, doc)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.db.Collection(collectionNotifications).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
