package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/sos/repository"
	"goldensage/pkg/log"
)

const collectionSOSAlerts = "sos_alerts"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Mongo-backed SOS alert repository.
func New(db *mongo.Database, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
