package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goldensage/internal/model"
	"goldensage/internal/sos/repository"
)

func (r *implRepository) CreateAlert(ctx context.Context, opts repository.CreateAlertOptions) (model.SOSAlert, error) {
	doc := model.SOSAlert{
		AlertID:     opts.AlertID,
		PatientID:   opts.PatientID,
		PatientName: opts.PatientName,
		GuardianID:  opts.GuardianID,
		Timestamp:   time.Now().UTC(),
		Status:      opts.Status,
		Location:    opts.Location,
		Message:     opts.Message,
	}

	result, err := r.db.Collection(collectionSOSAlerts).InsertOne(ctx, doc)
	if err != nil {
		return model.SOSAlert{}, fmt.Errorf("failed to insert sos alert: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) ListAlertsByPatient(ctx context.Context, patientID string) ([]model.SOSAlert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.db.Collection(collectionSOSAlerts).Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []model.SOSAlert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode sos alerts: %w", err)
	}
	return alerts, nil
}
