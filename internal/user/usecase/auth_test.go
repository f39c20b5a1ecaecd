package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"goldensage/internal/model"
	"goldensage/internal/user"
)

func TestSignupGuardian(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and returns token", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo)

		out, err := uc.SignupGuardian(ctx, user.SignupGuardianInput{
			Email:    "Care@Example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
		if out.Role != model.RoleGuardian {
			t.Errorf("role = %q, want guardian", out.Role)
		}
		if len(repo.guardians) != 1 {
			t.Fatalf("stored %d guardians, want 1", len(repo.guardians))
		}
		stored := repo.guardians[0]
		if stored.Email != "care@example.com" {
			t.Errorf("stored email = %q, want lowercased", stored.Email)
		}
		if stored.Password == "secret123" {
			t.Error("password stored in plain text")
		}
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")) != nil {
			t.Error("stored hash does not match the password")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo)

		input := user.SignupGuardianInput{Email: "care@example.com", Password: "secret123"}
		if _, err := uc.SignupGuardian(ctx, input); err != nil {
			t.Fatalf("first signup: %v", err)
		}
		if _, err := uc.SignupGuardian(ctx, input); !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
	})
}

func TestLoginGuardian(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	if _, err := uc.SignupGuardian(ctx, user.SignupGuardianInput{
		Email:    "care@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		out, err := uc.LoginGuardian(ctx, user.LoginInput{Email: "care@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.LoginGuardian(ctx, user.LoginInput{Email: "care@example.com", Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.LoginGuardian(ctx, user.LoginInput{Email: "nobody@example.com", Password: "secret123"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestSignupPatient(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	out, err := uc.SignupPatient(ctx, "guardian-1", user.SignupPatientInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Phone:    "+911234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Patient.GuardianID != "guardian-1" {
		t.Errorf("guardian id = %q, want guardian-1", out.Patient.GuardianID)
	}
	if out.Patient.Phone != "+911234567890" {
		t.Errorf("phone = %q", out.Patient.Phone)
	}

	login, err := uc.LoginPatient(ctx, user.LoginInput{Email: "asha@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login after signup: %v", err)
	}
	if login.Role != model.RolePatient {
		t.Errorf("role = %q, want patient", login.Role)
	}
	if login.Name != "Asha" {
		t.Errorf("name = %q, want Asha", login.Name)
	}
}

func TestLoginUnity(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	if _, err := uc.SignupUnity(ctx, user.SignupUnityInput{
		Email:    "ngo@example.com",
		Password: "secret123",
		Kind:     "ngo",
		Name:     "Helping Hands",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	out, err := uc.LoginUnity(ctx, user.LoginInput{Email: "ngo@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Role != model.RoleUnity {
		t.Errorf("role = %q, want unity", out.Role)
	}
	if out.Name != "Helping Hands" {
		t.Errorf("name = %q", out.Name)
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	created, err := uc.SignupPatient(ctx, "guardian-1", user.SignupPatientInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	t.Run("patient profile strips password", func(t *testing.T) {
		profile, err := uc.Profile(ctx, model.RolePatient, created.Patient.ID.Hex())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Patient == nil {
			t.Fatal("expected patient profile")
		}
		if profile.Patient.Password != "" {
			t.Error("password leaked in profile")
		}
		if profile.Patient.Name != "Asha" {
			t.Errorf("name = %q", profile.Patient.Name)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Profile(ctx, model.RolePatient, "64b000000000000000000000")
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestListPatients(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := uc.SignupPatient(ctx, "guardian-1", user.SignupPatientInput{
			Name: "P", Email: email, Password: "secret123",
		}); err != nil {
			t.Fatalf("signup %s: %v", email, err)
		}
	}
	if _, err := uc.SignupPatient(ctx, "guardian-2", user.SignupPatientInput{
		Name: "Q", Email: "c@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	patients, err := uc.ListPatients(ctx, "guardian-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("got %d patients, want 2", len(patients))
	}
	for _, p := range patients {
		if p.Password != "" {
			t.Error("password leaked in patient list")
		}
	}
}
