package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goldensage/internal/health"
	repo "goldensage/internal/health/repository"
	"goldensage/internal/notification"
	"goldensage/pkg/gcalendar"
)

const (
	appointmentTimezone = "Asia/Kolkata"
	appointmentDuration = 30 * time.Minute
)

// BookAppointment schedules a doctor visit. When a calendar client is
// configured the booking also creates a calendar event; event failures
// are logged, the booking still succeeds.
func (uc *implUseCase) BookAppointment(ctx context.Context, input health.BookAppointmentInput) (health.AppointmentOutput, error) {
	if _, err := uc.getPatient(ctx, input.PatientID); err != nil {
		return health.AppointmentOutput{}, err
	}

	appointment, err := uc.repo.CreateAppointment(ctx, repo.CreateAppointmentOptions{
		PatientID:  input.PatientID,
		DoctorName: input.DoctorName,
		Specialty:  input.Specialty,
		Date:       input.Date,
		Time:       input.Time,
		Status:     health.AppointmentStatusScheduled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookAppointment CreateAppointment: %v", err)
		return health.AppointmentOutput{}, err
	}

	uc.createCalendarEvent(ctx, input)

	return health.AppointmentOutput{Appointment: appointment}, nil
}

// RequestRefill notifies the patient's guardian that a medication needs
// a refill.
func (uc *implUseCase) RequestRefill(ctx context.Context, patientID, medicationID string) error {
	patient, err := uc.getPatient(ctx, patientID)
	if err != nil {
		return err
	}

	medication, err := uc.repo.GetMedication(ctx, medicationID, patientID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return health.ErrMedicationNotFound
		}
		uc.l.Errorf(ctx, "uc.RequestRefill GetMedication: %v", err)
		return err
	}

	if patient.GuardianID == "" {
		return nil
	}

	err = uc.notifier.Notify(ctx, notification.NotifyInput{
		UserID:    patient.GuardianID,
		Type:      notification.TypeRefill,
		Title:     "Medication refill requested",
		Message:   fmt.Sprintf("%s has requested a refill of %s (%s)", patient.Name, medication.Name, medication.Dosage),
		PatientID: patientID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RequestRefill Notify: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) createCalendarEvent(ctx context.Context, input health.BookAppointmentInput) {
	if uc.calendar == nil {
		return
	}

	loc, err := time.LoadLocation(appointmentTimezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", input.Date+" "+input.Time, loc)
	if err != nil {
		uc.l.Warnf(ctx, "uc.BookAppointment parse slot %q %q: %v", input.Date, input.Time, err)
		return
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     fmt.Sprintf("Appointment with %s", input.DoctorName),
		Description: input.Specialty,
		StartTime:   start,
		EndTime:     start.Add(appointmentDuration),
		Timezone:    appointmentTimezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookAppointment CreateEvent: %v", err)
	}
}
