package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/notification/repository"
	"goldensage/pkg/log"
)

const collectionNotifications = "notifications"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Mongo-backed notification repository.
func New(db *mongo.Database, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
