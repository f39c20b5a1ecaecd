package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goldensage/internal/health/repository"
	"goldensage/internal/model"
)

func (r *implRepository) ListVitals(ctx context.Context, patientID string, limit int64) ([]model.Vital, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection(collectionVitals).Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	defer cursor.Close(ctx)

	var vitals []model.Vital
	if err := cursor.All(ctx, &vitals); err != nil {
		return nil, fmt.Errorf("failed to decode vitals: %w", err)
	}
	return vitals, nil
}

func (r *implRepository) ListMedications(ctx context.Context, patientID string) ([]model.Medication, error) {
	cursor, err := r.db.Collection(collectionMedications).Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer cursor.Close(ctx)

	var medications []model.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, fmt.Errorf("failed to decode medications: %w", err)
	}
	return medications, nil
}

func (r *implRepository) GetMedication(ctx context.Context, medicationID, patientID string) (model.Medication, error) {
	oid, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return model.Medication{}, repository.ErrNotFound
	}

	var doc model.Medication
	err = r.db.Collection(collectionMedications).FindOne(ctx, bson.M{
		"_id":        oid,
		"patient_id": patientID,
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Medication{}, repository.ErrNotFound
		}
		return model.Medication{}, fmt.Errorf("failed to get medication: %w", err)
	}
	return doc, nil
}

func (r *implRepository) ListAppointments(ctx context.Context, patientID string, listOpts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	order := -1
	if listOpts.Ascending {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: order}})
	if listOpts.Limit > 0 {
		opts.SetLimit(listOpts.Limit)
	}

	cursor, err := r.db.Collection(collectionAppointments).Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []model.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *implRepository) CreateAppointment(ctx context.Context, opts repository.CreateAppointmentOptions) (model.Appointment, error) {
	doc := model.Appointment{
		PatientID:  opts.PatientID,
		DoctorName: opts.DoctorName,
		Specialty:  opts.Specialty,
		Date:       opts.Date,
		Time:       opts.Time,
		Status:     opts.Status,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := r.db.Collection(collectionAppointments).InsertOne(ctx, doc)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to insert appointment: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}
