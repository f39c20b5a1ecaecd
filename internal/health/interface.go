package health

import (
	"context"

	"goldensage/internal/model"
	"goldensage/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// PatientDashboard assembles the patient's own dashboard data.
	PatientDashboard(ctx context.Context, patientID string) (DashboardOutput, error)
	// GuardianPatientView assembles a guardian's view of one of their
	// patients. The patient must belong to the guardian.
	GuardianPatientView(ctx context.Context, guardianID, patientID string) (DashboardOutput, error)
	// BookAppointment schedules a doctor visit for the patient.
	BookAppointment(ctx context.Context, input BookAppointmentInput) (AppointmentOutput, error)
	// RequestRefill notifies the patient's guardian that a medication
	// is running low.
	RequestRefill(ctx context.Context, patientID, medicationID string) error
	// CheckEmergency reports whether any of the guardian's patients has
	// an active emergency flag.
	CheckEmergency(ctx context.Context, guardianID string) (EmergencyOutput, error)
}

// PatientDirectory is the slice of the user store the health module needs.
type PatientDirectory interface {
	GetPatientByID(ctx context.Context, id string) (model.Patient, error)
	FindEmergencyPatient(ctx context.Context, guardianID string) (model.Patient, error)
}

// TaskLister provides the day's tasks for dashboard assembly.
type TaskLister interface {
	ListToday(ctx context.Context, patientID string) ([]model.Task, error)
}

// CalendarClient mirrors the gcalendar client surface used on booking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
