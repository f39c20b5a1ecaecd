package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"goldensage/internal/model"
	"goldensage/internal/notification"
	"goldensage/internal/sos"
	repo "goldensage/internal/sos/repository"
	userRepo "goldensage/internal/user/repository"
)

const (
	notificationTitle = "EMERGENCY SOS ALERT"
	smsTemplate       = "EMERGENCY SOS: %s needs help! Please respond immediately."
)

// Trigger raises an emergency alert for the patient. The alert write is
// the source of truth; notification, emergency flag and SMS fan-out are
// independent follow-ups whose failures are logged, not surfaced.
func (uc *implUseCase) Trigger(ctx context.Context, patientID string) (sos.TriggerOutput, error) {
	patient, err := uc.patients.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return sos.TriggerOutput{}, sos.ErrPatientNotFound
		}
		uc.l.Errorf(ctx, "uc.Trigger GetPatientByID: %v", err)
		return sos.TriggerOutput{}, err
	}

	alert, err := uc.repo.CreateAlert(ctx, repo.CreateAlertOptions{
		AlertID:     uuid.New().String(),
		PatientID:   patientID,
		PatientName: patient.Name,
		GuardianID:  patient.GuardianID,
		Status:      sos.StatusActive,
		Location:    model.Location{},
		Message:     fmt.Sprintf("Emergency SOS alert from %s", patient.Name),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Trigger CreateAlert: %v", err)
		return sos.TriggerOutput{}, err
	}

	if patient.GuardianID != "" {
		err := uc.notifier.Notify(ctx, notification.NotifyInput{
			UserID:    patient.GuardianID,
			Type:      notification.TypeEmergencySOS,
			Title:     notificationTitle,
			Message:   fmt.Sprintf("%s has triggered an emergency SOS alert!", patient.Name),
			Priority:  notification.PriorityCritical,
			PatientID: patientID,
			AlertID:   alert.AlertID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Trigger Notify: %v", err)
		}
	}

	if err := uc.patients.SetPatientEmergency(ctx, patientID, true); err != nil {
		uc.l.Errorf(ctx, "uc.Trigger SetPatientEmergency: %v", err)
	}

	uc.fanOutSMS(ctx, patient)

	return sos.TriggerOutput{Alert: alert}, nil
}

// TriggerAlert is the assistant-facing form of Trigger.
func (uc *implUseCase) TriggerAlert(ctx context.Context, patientID string) error {
	_, err := uc.Trigger(ctx, patientID)
	return err
}

// List returns the patient's alerts newest first with the active count.
func (uc *implUseCase) List(ctx context.Context, patientID string) (sos.ListOutput, error) {
	alerts, err := uc.repo.ListAlertsByPatient(ctx, patientID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAlertsByPatient: %v", err)
		return sos.ListOutput{}, err
	}

	active := 0
	for _, a := range alerts {
		if a.Status == sos.StatusActive {
			active++
		}
	}
	return sos.ListOutput{Alerts: alerts, ActiveCount: active}, nil
}

// fanOutSMS sends the fixed emergency template to the configured hospital
// contacts, falling back to the patient's own phone when none are set.
func (uc *implUseCase) fanOutSMS(ctx context.Context, patient model.Patient) {
	if uc.sender == nil {
		return
	}

	recipients := uc.hospitalNumbers
	if len(recipients) == 0 && patient.Phone != "" {
		recipients = []string{patient.Phone}
	}

	message := fmt.Sprintf(smsTemplate, patient.Name)
	for _, number := range recipients {
		if err := uc.sender.Send(ctx, number, message); err != nil {
			uc.l.Errorf(ctx, "uc.Trigger sms.Send %s: %v", number, err)
		}
	}
}
