package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/health/repository"
	"goldensage/pkg/log"
)

const (
	collectionVitals       = "vitals"
	collectionMedications  = "medications"
	collectionAppointments = "appointments"
)

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Mongo-backed health repository.
func New(db *mongo.Database, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
