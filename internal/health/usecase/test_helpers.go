package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"goldensage/internal/health/repository"
	"goldensage/internal/model"
	"goldensage/internal/notification"
	userRepo "goldensage/internal/user/repository"
	"goldensage/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type vitalsCall struct {
	patientID string
	limit     int64
}

type apptListCall struct {
	patientID string
	opts      repository.ListAppointmentsOptions
}

type mockRepository struct {
	vitals      []model.Vital
	vitalsCalls []vitalsCall

	medications []model.Medication
	medication  model.Medication
	medErr      error

	appointments []model.Appointment
	apptCalls    []apptListCall

	createdAppts []repository.CreateAppointmentOptions
	createErr    error
}

func (m *mockRepository) ListVitals(ctx context.Context, patientID string, limit int64) ([]model.Vital, error) {
	m.vitalsCalls = append(m.vitalsCalls, vitalsCall{patientID: patientID, limit: limit})
	return m.vitals, nil
}

func (m *mockRepository) ListMedications(ctx context.Context, patientID string) ([]model.Medication, error) {
	return m.medications, nil
}

func (m *mockRepository) GetMedication(ctx context.Context, medicationID, patientID string) (model.Medication, error) {
	if m.medErr != nil {
		return model.Medication{}, m.medErr
	}
	return m.medication, nil
}

func (m *mockRepository) ListAppointments(ctx context.Context, patientID string, opts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	m.apptCalls = append(m.apptCalls, apptListCall{patientID: patientID, opts: opts})
	return m.appointments, nil
}

func (m *mockRepository) CreateAppointment(ctx context.Context, opts repository.CreateAppointmentOptions) (model.Appointment, error) {
	m.createdAppts = append(m.createdAppts, opts)
	if m.createErr != nil {
		return model.Appointment{}, m.createErr
	}
	return model.Appointment{
		PatientID:  opts.PatientID,
		DoctorName: opts.DoctorName,
		Specialty:  opts.Specialty,
		Date:       opts.Date,
		Time:       opts.Time,
		Status:     opts.Status,
	}, nil
}

type mockPatientDirectory struct {
	patient model.Patient
	getErr  error

	emergencyPatient model.Patient
	emergencyErr     error
}

func (m *mockPatientDirectory) GetPatientByID(ctx context.Context, id string) (model.Patient, error) {
	if m.getErr != nil {
		return model.Patient{}, m.getErr
	}
	return m.patient, nil
}

func (m *mockPatientDirectory) FindEmergencyPatient(ctx context.Context, guardianID string) (model.Patient, error) {
	if m.emergencyErr != nil {
		return model.Patient{}, m.emergencyErr
	}
	return m.emergencyPatient, nil
}

type mockTaskLister struct {
	tasks []model.Task
}

func (m *mockTaskLister) ListToday(ctx context.Context, patientID string) ([]model.Task, error) {
	return m.tasks, nil
}

type mockNotifier struct {
	sent      []notification.NotifyInput
	notifyErr error
}

func (m *mockNotifier) Notify(ctx context.Context, input notification.NotifyInput) error {
	m.sent = append(m.sent, input)
	return m.notifyErr
}

func (m *mockNotifier) Feed(ctx context.Context, userID string) ([]model.Notification, error) {
	return nil, nil
}

type mockCalendar struct {
	events    []gcalendar.CreateEventRequest
	createErr error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.events = append(m.events, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{Summary: req.Summary}, nil
}

func newTestPatient(guardianID string) model.Patient {
	return model.Patient{
		ID:         primitive.NewObjectID(),
		Name:       "Asha",
		Phone:      "+911234567890",
		GuardianID: guardianID,
	}
}

var (
	errNotFound     = userRepo.ErrNotFound
	errRepoNotFound = repository.ErrNotFound
)
