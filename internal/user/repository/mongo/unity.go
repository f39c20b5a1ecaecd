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

func (r *implRepository) CreateUnityUser(ctx context.Context, opts repository.CreateUnityUserOptions) (model.UnityUser, error) {
	doc := model.UnityUser{
		Email:     opts.Email,
		Password:  opts.Password,
		Role:      opts.Kind,
		Name:      opts.Name,
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.db.Collection(collectionUnityUsers).InsertOne(ctx, doc)
	if err != nil {
		return model.UnityUser{}, fmt.Errorf("failed to insert unity user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) GetUnityUserByEmail(ctx context.Context, email string) (model.UnityUser, error) {
	var doc model.UnityUser
	err := r.db.Collection(collectionUnityUsers).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UnityUser{}, repository.ErrNotFound
		}
		return model.UnityUser{}, fmt.Errorf("failed to get unity user: %w", err)
	}
	return doc, nil
}

func (r *implRepository) GetUnityUserByID(ctx context.Context, id string) (model.UnityUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.UnityUser{}, repository.ErrNotFound
	}

	var doc model.UnityUser
	if err := r.db.Collection(collectionUnityUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UnityUser{}, repository.ErrNotFound
		}
		return model.UnityUser{}, fmt.Errorf("failed to get unity user: %w", err)
	}
	return doc, nil
}
