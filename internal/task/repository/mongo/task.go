package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goldensage/internal/model"
	"goldensage/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	doc := model.Task{
		PatientID:   opts.PatientID,
		Title:       opts.Title,
		Description: opts.Description,
		IsCompleted: false,
		Date:        opts.Date,
		CreatedAt:   time.Now().UTC(),
	}

	result, err := r.tasks().InsertOne(ctx, doc)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (r *implRepository) UpdateTaskCompletion(ctx context.Context, taskID, patientID string, done bool) error {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return repository.ErrNotFound
	}

	result, err := r.tasks().UpdateOne(ctx,
		bson.M{"_id": oid, "patient_id": patientID},
		bson.M{"$set": bson.M{"is_completed": done}},
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ListTasks(ctx context.Context, patientID, date string) ([]model.Task, error) {
	filter := bson.M{"patient_id": patientID}
	if date != "" {
		filter["date"] = date
	}

	cursor, err := r.tasks().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}
