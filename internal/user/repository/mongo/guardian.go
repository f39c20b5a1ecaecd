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

func (r *implRepository) CreateGuardian(ctx context.Context, opts repository.CreateGuardianOptions) (model.Guardian, error) {
	doc := model.Guardian{
		Email:     opts.Email,
		Password:  opts.Password,
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.db.Collection(collectionGuardians).InsertOne(ctx, doc)
	if err != nil {
		return model.Guardian{}, fmt.Errorf("failed to insert guardian: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) GetGuardianByEmail(ctx context.Context, email string) (model.Guardian, error) {
	var doc model.Guardian
	err := r.db.Collection(collectionGuardians).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Guardian{}, repository.ErrNotFound
		}
		return model.Guardian{}, fmt.Errorf("failed to get guardian: %w", err)
	}
	return doc, nil
}

func (r *implRepository) GetGuardianByID(ctx context.Context, id string) (model.Guardian, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Guardian{}, repository.ErrNotFound
	}

	var doc model.Guardian
	if err := r.db.Collection(collectionGuardians).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Guardian{}, repository.ErrNotFound
		}
		return model.Guardian{}, fmt.Errorf("failed to get guardian: %w", err)
	}
	return doc, nil
}
