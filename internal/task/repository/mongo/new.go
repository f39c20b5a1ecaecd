package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/task/repository"
	"goldensage/pkg/log"
)

const collectionTasks = "tasks"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Mongo-backed task repository.
func New(db *mongo.Database, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

func (r *implRepository) tasks() *mongo.Collection {
	return r.db.Collection(collectionTasks)
}
