package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guardian is a caregiver account.
type Guardian struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Patient is a senior account linked to a guardian.
type Patient struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Phone          string             `bson:"phone"`
	GuardianID     string             `bson:"guardian_id"`
	MedicalRecords string             `bson:"medical_records,omitempty"`
	IsEmergency    bool               `bson:"is_emergency"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// UnityUser is a community-hub account (volunteer individual or NGO).
type UnityUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Name      string             `bson:"name"`
	ExtraData map[string]string  `bson:"extra_data,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}
