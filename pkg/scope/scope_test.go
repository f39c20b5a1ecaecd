package scope

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue(Payload{UserID: "user-1", Role: "patient"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if payload.UserID != "user-1" {
		t.Errorf("user id = %q, want user-1", payload.UserID)
	}
	if payload.Role != "patient" {
		t.Errorf("role = %q, want patient", payload.Role)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = NewManager("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.Issue(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Verify("not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
