package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/model"
	"goldensage/internal/user/repository"
)

func (r *implRepository) CreatePatient(ctx context.Context, opts repository.CreatePatientOptions) (model.Patient, error) {
	doc := model.Patient{
		Name:       opts.Name,
		Email:      opts.Email,
		Password:   opts.Password,
		Phone:      opts.Phone,
		GuardianID: opts.GuardianID,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := r.db.Collection(collectionPatients).InsertOne(ctx, doc)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to insert patient: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) GetPatientByEmail(ctx context.Context, email string) (model.Patient, error) {
	var doc model.Patient
	err := r.db.Collection(collectionPatients).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Patient{}, repository.ErrNotFound
		}
		return model.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}
	return doc, nil
}

func (r *implRepository) GetPatientByID(ctx context.Context, id string) (model.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Patient{}, repository.ErrNotFound
	}

	var doc model.Patient
	if err := r.db.Collection(collectionPatients).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Patient{}, repository.ErrNotFound
		}
		return model.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}
	return doc, nil
}

func (r *implRepository) ListPatientsByGuardian(ctx context.Context, guardianID string) ([]model.Patient, error) {
	cursor, err := r.db.Collection(collectionPatients).Find(ctx, bson.M{"guardian_id": guardianID})
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []model.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

func (r *implRepository) FindEmergencyPatient(ctx context.Context, guardianID string) (model.Patient, error) {
	var doc model.Patient
	err := r.db.Collection(collectionPatients).FindOne(ctx, bson.M{
		"guardian_id":  guardianID,
		"is_emergency": true,
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Patient{}, repository.ErrNotFound
		}
		return model.Patient{}, fmt.Errorf("failed to find emergency patient: %w", err)
	}
	return doc, nil
}

func (r *implRepository) SetPatientEmergency(ctx context.Context, patientID string, emergency bool) error {
	oid, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return repository.ErrNotFound
	}

	result, err := r.db.Collection(collectionPatients).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_emergency": emergency}},
	)
	if err != nil {
		return fmt.Errorf("failed to set emergency flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
