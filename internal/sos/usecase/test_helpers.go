package usecase

import (
	"context"

	"goldensage/internal/model"
	"goldensage/internal/notification"
	"goldensage/internal/sos/repository"
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

type mockRepository struct {
	created   []repository.CreateAlertOptions
	createErr error

	alerts  []model.SOSAlert
	listErr error
}

func (m *mockRepository) CreateAlert(ctx context.Context, opts repository.CreateAlertOptions) (model.SOSAlert, error) {
	m.created = append(m.created, opts)
	if m.createErr != nil {
		return model.SOSAlert{}, m.createErr
	}
	return model.SOSAlert{
		AlertID:     opts.AlertID,
		PatientID:   opts.PatientID,
		PatientName: opts.PatientName,
		GuardianID:  opts.GuardianID,
		Status:      opts.Status,
		Message:     opts.Message,
	}, nil
}

func (m *mockRepository) ListAlertsByPatient(ctx context.Context, patientID string) ([]model.SOSAlert, error) {
	return m.alerts, m.listErr
}

type mockPatientDirectory struct {
	patient model.Patient
	getErr  error

	emergencySet []string
	setErr       error
}

func (m *mockPatientDirectory) GetPatientByID(ctx context.Context, id string) (model.Patient, error) {
	if m.getErr != nil {
		return model.Patient{}, m.getErr
	}
	return m.patient, nil
}

func (m *mockPatientDirectory) SetPatientEmergency(ctx context.Context, patientID string, emergency bool) error {
	m.emergencySet = append(m.emergencySet, patientID)
	return m.setErr
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

type smsCall struct {
	number  string
	message string
}

type mockSender struct {
	calls   []smsCall
	sendErr error
}

func (m *mockSender) Send(ctx context.Context, phoneNumber, message string) error {
	m.calls = append(m.calls, smsCall{number: phoneNumber, message: message})
	return m.sendErr
}
