package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"goldensage/internal/user/repository"
	"goldensage/pkg/log"
)

const (
	collectionGuardians  = "guardians"
	collectionPatients   = "patients"
	collectionUnityUsers = "unity_users"
)

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Mongo-backed user repository.
func New(db *mongo.Database, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
