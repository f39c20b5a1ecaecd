package usecase

import (
	"context"
	"errors"
	"testing"

	"goldensage/internal/health"
	"goldensage/internal/model"
	"goldensage/internal/notification"
)

func TestPatientDashboard(t *testing.T) {
	ctx := context.Background()
	patient := newTestPatient("guardian-1")

	repo := &mockRepository{
		vitals:       []model.Vital{{Type: "heart_rate", Value: "72"}},
		medications:  []model.Medication{{Name: "Metformin"}},
		appointments: []model.Appointment{{DoctorName: "Dr. Rao"}},
	}
	dir := &mockPatientDirectory{patient: patient}
	tasks := &mockTaskLister{tasks: []model.Task{{Title: "Walk"}}}
	uc := New(&mockLogger{}, repo, dir, tasks, &mockNotifier{}, nil, "")

	out, err := uc.PatientDashboard(ctx, patient.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PatientName != "Asha" || out.PatientPhone != "+911234567890" {
		t.Errorf("patient header = %q %q", out.PatientName, out.PatientPhone)
	}
	if len(out.Vitals) != 1 || len(out.Tasks) != 1 || len(out.Medications) != 1 || len(out.Appointments) != 1 {
		t.Errorf("dashboard sections incomplete: %+v", out)
	}

	if len(repo.vitalsCalls) != 1 || repo.vitalsCalls[0].limit != 10 {
		t.Errorf("vitals calls = %+v, want limit 10", repo.vitalsCalls)
	}
	if len(repo.apptCalls) != 1 {
		t.Fatalf("appointment calls = %d, want 1", len(repo.apptCalls))
	}
	if repo.apptCalls[0].opts.Ascending || repo.apptCalls[0].opts.Limit != 5 {
		t.Errorf("appointment opts = %+v, want desc limit 5", repo.apptCalls[0].opts)
	}
}

func TestGuardianPatientView(t *testing.T) {
	ctx := context.Background()

	t.Run("own patient", func(t *testing.T) {
		patient := newTestPatient("guardian-1")
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: patient}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		if _, err := uc.GuardianPatientView(ctx, "guardian-1", patient.ID.Hex()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.vitalsCalls) != 1 || repo.vitalsCalls[0].limit != 5 {
			t.Errorf("vitals calls = %+v, want limit 5", repo.vitalsCalls)
		}
		if !repo.apptCalls[0].opts.Ascending || repo.apptCalls[0].opts.Limit != 0 {
			t.Errorf("appointment opts = %+v, want asc no limit", repo.apptCalls[0].opts)
		}
	})

	t.Run("someone else's patient", func(t *testing.T) {
		patient := newTestPatient("guardian-2")
		dir := &mockPatientDirectory{patient: patient}
		uc := New(&mockLogger{}, &mockRepository{}, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		_, err := uc.GuardianPatientView(ctx, "guardian-1", patient.ID.Hex())
		if !errors.Is(err, health.ErrNotYourPatient) {
			t.Errorf("err = %v, want ErrNotYourPatient", err)
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		dir := &mockPatientDirectory{getErr: errNotFound}
		uc := New(&mockLogger{}, &mockRepository{}, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		_, err := uc.GuardianPatientView(ctx, "guardian-1", "ghost")
		if !errors.Is(err, health.ErrPatientNotFound) {
			t.Errorf("err = %v, want ErrPatientNotFound", err)
		}
	})
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	patient := newTestPatient("guardian-1")

	input := health.BookAppointmentInput{
		PatientID:  patient.ID.Hex(),
		DoctorName: "Dr. Rao",
		Specialty:  "Cardiology",
		Date:       "2026-09-01",
		Time:       "10:30",
	}

	t.Run("books with scheduled status", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: patient}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		out, err := uc.BookAppointment(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Appointment.Status != health.AppointmentStatusScheduled {
			t.Errorf("status = %q, want scheduled", out.Appointment.Status)
		}
		if len(repo.createdAppts) != 1 {
			t.Fatalf("created %d appointments, want 1", len(repo.createdAppts))
		}
	})

	t.Run("creates calendar event when configured", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: patient}
		cal := &mockCalendar{}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, &mockNotifier{}, cal, "clinic")

		if _, err := uc.BookAppointment(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.events) != 1 {
			t.Fatalf("created %d events, want 1", len(cal.events))
		}
		event := cal.events[0]
		if event.CalendarID != "clinic" {
			t.Errorf("calendar id = %q", event.CalendarID)
		}
		if event.Summary != "Appointment with Dr. Rao" {
			t.Errorf("summary = %q", event.Summary)
		}
		if !event.EndTime.After(event.StartTime) {
			t.Error("event has no duration")
		}
	})

	t.Run("calendar failure does not fail the booking", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: patient}
		cal := &mockCalendar{createErr: errors.New("api down")}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, &mockNotifier{}, cal, "")

		if _, err := uc.BookAppointment(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.createdAppts) != 1 {
			t.Error("booking not persisted despite calendar failure")
		}
	})
}

func TestRequestRefill(t *testing.T) {
	ctx := context.Background()
	patient := newTestPatient("guardian-1")

	t.Run("notifies the guardian", func(t *testing.T) {
		repo := &mockRepository{medication: model.Medication{Name: "Metformin", Dosage: "500mg"}}
		dir := &mockPatientDirectory{patient: patient}
		notifier := &mockNotifier{}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, notifier, nil, "")

		if err := uc.RequestRefill(ctx, patient.ID.Hex(), "med-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.sent) != 1 {
			t.Fatalf("sent %d notifications, want 1", len(notifier.sent))
		}
		n := notifier.sent[0]
		if n.UserID != "guardian-1" {
			t.Errorf("notified %q, want guardian-1", n.UserID)
		}
		if n.Type != notification.TypeRefill {
			t.Errorf("type = %q, want refill", n.Type)
		}
	})

	t.Run("unknown medication", func(t *testing.T) {
		repo := &mockRepository{medErr: errRepoNotFound}
		dir := &mockPatientDirectory{patient: patient}
		uc := New(&mockLogger{}, repo, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		err := uc.RequestRefill(ctx, patient.ID.Hex(), "ghost")
		if !errors.Is(err, health.ErrMedicationNotFound) {
			t.Errorf("err = %v, want ErrMedicationNotFound", err)
		}
	})
}

func TestCheckEmergency(t *testing.T) {
	ctx := context.Background()

	t.Run("flagged patient", func(t *testing.T) {
		dir := &mockPatientDirectory{emergencyPatient: model.Patient{Name: "Asha"}}
		uc := New(&mockLogger{}, &mockRepository{}, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		out, err := uc.CheckEmergency(ctx, "guardian-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Detected || out.PatientName != "Asha" {
			t.Errorf("out = %+v, want detected Asha", out)
		}
	})

	t.Run("no emergency", func(t *testing.T) {
		dir := &mockPatientDirectory{emergencyErr: errNotFound}
		uc := New(&mockLogger{}, &mockRepository{}, dir, &mockTaskLister{}, &mockNotifier{}, nil, "")

		out, err := uc.CheckEmergency(ctx, "guardian-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Detected {
			t.Error("detected an emergency where none exists")
		}
	})
}
