package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"goldensage/internal/model"
	"goldensage/internal/notification"
	"goldensage/internal/sos"
	userRepo "goldensage/internal/user/repository"
)

func testPatient() model.Patient {
	return model.Patient{
		Name:       "Asha",
		Phone:      "+911234567890",
		GuardianID: "guardian-1",
	}
}

func TestTrigger(t *testing.T) {
	ctx := context.Background()

	t.Run("writes alert, notification and emergency flag", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: testPatient()}
		notifier := &mockNotifier{}
		sender := &mockSender{}
		uc := New(&mockLogger{}, repo, dir, notifier, sender, []string{"+911111111111", "+912222222222"})

		out, err := uc.Trigger(ctx, "patient-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.created) != 1 {
			t.Fatalf("created %d alerts, want 1", len(repo.created))
		}
		alert := repo.created[0]
		if alert.Status != sos.StatusActive {
			t.Errorf("status = %q, want active", alert.Status)
		}
		if alert.AlertID == "" {
			t.Error("alert id not set")
		}
		if alert.GuardianID != "guardian-1" {
			t.Errorf("guardian id = %q", alert.GuardianID)
		}
		if out.Alert.Message != "Emergency SOS alert from Asha" {
			t.Errorf("message = %q", out.Alert.Message)
		}

		if len(notifier.sent) != 1 {
			t.Fatalf("sent %d notifications, want 1", len(notifier.sent))
		}
		n := notifier.sent[0]
		if n.UserID != "guardian-1" {
			t.Errorf("notification user = %q, want guardian-1", n.UserID)
		}
		if n.Type != notification.TypeEmergencySOS {
			t.Errorf("notification type = %q", n.Type)
		}
		if n.Priority != notification.PriorityCritical {
			t.Errorf("notification priority = %q", n.Priority)
		}
		if n.Title != "EMERGENCY SOS ALERT" {
			t.Errorf("notification title = %q", n.Title)
		}
		if n.AlertID != alert.AlertID {
			t.Errorf("notification alert id = %q, want %q", n.AlertID, alert.AlertID)
		}

		if len(dir.emergencySet) != 1 || dir.emergencySet[0] != "patient-1" {
			t.Errorf("emergency flag calls = %v", dir.emergencySet)
		}
	})

	t.Run("one SMS per hospital contact", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: testPatient()}
		sender := &mockSender{}
		uc := New(&mockLogger{}, repo, dir, &mockNotifier{}, sender, []string{"+911111111111", "+912222222222"})

		if _, err := uc.Trigger(ctx, "patient-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.calls) != 2 {
			t.Fatalf("sent %d SMS, want 2", len(sender.calls))
		}
		for _, call := range sender.calls {
			if !strings.Contains(call.message, "Asha") {
				t.Errorf("SMS message %q missing patient name", call.message)
			}
		}
	})

	t.Run("falls back to patient phone", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: testPatient()}
		sender := &mockSender{}
		uc := New(&mockLogger{}, repo, dir, &mockNotifier{}, sender, nil)

		if _, err := uc.Trigger(ctx, "patient-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.calls) != 1 {
			t.Fatalf("sent %d SMS, want 1", len(sender.calls))
		}
		if sender.calls[0].number != "+911234567890" {
			t.Errorf("recipient = %q, want patient phone", sender.calls[0].number)
		}
	})

	t.Run("SMS failure does not fail the trigger", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: testPatient()}
		sender := &mockSender{sendErr: errors.New("sns down")}
		uc := New(&mockLogger{}, repo, dir, &mockNotifier{}, sender, []string{"+911111111111"})

		if _, err := uc.Trigger(ctx, "patient-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Errorf("alert not persisted despite SMS failure")
		}
	})

	t.Run("nil sender skips fan-out", func(t *testing.T) {
		repo := &mockRepository{}
		dir := &mockPatientDirectory{patient: testPatient()}
		uc := New(&mockLogger{}, repo, dir, &mockNotifier{}, nil, []string{"+911111111111"})

		if _, err := uc.Trigger(ctx, "patient-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		dir := &mockPatientDirectory{getErr: userRepo.ErrNotFound}
		uc := New(&mockLogger{}, &mockRepository{}, dir, &mockNotifier{}, nil, nil)

		_, err := uc.Trigger(ctx, "ghost")
		if !errors.Is(err, sos.ErrPatientNotFound) {
			t.Errorf("err = %v, want ErrPatientNotFound", err)
		}
	})

	t.Run("no guardian skips notification", func(t *testing.T) {
		patient := testPatient()
		patient.GuardianID = ""
		dir := &mockPatientDirectory{patient: patient}
		notifier := &mockNotifier{}
		uc := New(&mockLogger{}, &mockRepository{}, dir, notifier, nil, nil)

		if _, err := uc.Trigger(ctx, "patient-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.sent) != 0 {
			t.Errorf("sent %d notifications, want 0", len(notifier.sent))
		}
	})
}

func TestTriggerAlert(t *testing.T) {
	dir := &mockPatientDirectory{patient: testPatient()}
	repo := &mockRepository{}
	uc := New(&mockLogger{}, repo, dir, &mockNotifier{}, nil, nil)

	if err := uc.TriggerAlert(context.Background(), "patient-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d alerts, want 1", len(repo.created))
	}
}

func TestList(t *testing.T) {
	repo := &mockRepository{alerts: []model.SOSAlert{
		{Status: sos.StatusActive},
		{Status: sos.StatusResolved},
		{Status: sos.StatusActive},
	}}
	uc := New(&mockLogger{}, repo, &mockPatientDirectory{}, &mockNotifier{}, nil, nil)

	out, err := uc.List(context.Background(), "patient-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Alerts) != 3 {
		t.Errorf("got %d alerts, want 3", len(out.Alerts))
	}
	if out.ActiveCount != 2 {
		t.Errorf("active count = %d, want 2", out.ActiveCount)
	}
}
