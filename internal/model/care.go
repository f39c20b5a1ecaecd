package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vital is a single vital-sign reading for a patient.
type Vital struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID string             `bson:"patient_id"`
	Type      string             `bson:"type"`
	Value     string             `bson:"value"`
	Unit      string             `bson:"unit"`
	Timestamp time.Time          `bson:"timestamp"`
}

// Medication is a prescribed medicine with remaining stock.
type Medication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID string             `bson:"patient_id"`
	Name      string             `bson:"name"`
	Dosage    string             `bson:"dosage"`
	TimeOfDay string             `bson:"time_of_day"`
	Stock     int                `bson:"stock"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Appointment is a scheduled doctor visit.
type Appointment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PatientID  string             `bson:"patient_id"`
	DoctorName string             `bson:"doctor_name"`
	Specialty  string             `bson:"specialty"`
	Date       string             `bson:"date"`
	Time       string             `bson:"time"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// Task is a patient's daily task or reminder.
// Date is the day bucket in YYYY-MM-DD form.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientID   string             `bson:"patient_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	IsCompleted bool               `bson:"is_completed"`
	Date        string             `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Notification is an inbox entry for any account.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Type      string             `bson:"type,omitempty"`
	Title     string             `bson:"title,omitempty"`
	Message   string             `bson:"message"`
	PatientID string             `bson:"patient_id,omitempty"`
	AlertID   string             `bson:"alert_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	Read      bool               `bson:"read"`
	Priority  string             `bson:"priority,omitempty"`
}

// Location is an optional geo hint attached to an SOS alert.
type Location struct {
	Latitude  *float64 `bson:"lat"`
	Longitude *float64 `bson:"lng"`
}

// SOSAlert is an emergency alert raised by a patient.
type SOSAlert struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AlertID     string             `bson:"alert_id"`
	PatientID   string             `bson:"patient_id"`
	PatientName string             `bson:"patient_name"`
	GuardianID  string             `bson:"guardian_id"`
	Timestamp   time.Time          `bson:"timestamp"`
	Status      string             `bson:"status"`
	Location    Location           `bson:"location"`
	Message     string             `bson:"message"`
}
