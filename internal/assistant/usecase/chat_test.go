package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"goldensage/internal/assistant"
	"goldensage/internal/model"
)

func TestChatAddReminder(t *testing.T) {
	reminders := &mockReminderStore{}
	uc := New(&mockLogger{}, nil, reminders, nil, 0, 0)

	out, err := uc.Chat(context.Background(), assistant.ChatInput{
		UserID: "p1",
		Role:   model.RolePatient,
		Text:   "remind me to drink water",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Action != assistant.ActionAddReminder {
		t.Fatalf("action = %q, want ADD_REMINDER", out.Action)
	}
	if len(reminders.calls) != 1 {
		t.Fatalf("reminder written %d times, want exactly 1", len(reminders.calls))
	}
	if reminders.calls[0].patientID != "p1" {
		t.Errorf("reminder patient = %q, want p1", reminders.calls[0].patientID)
	}
	if reminders.calls[0].description != "remind me to drink water" {
		t.Errorf("reminder description = %q, want the raw utterance", reminders.calls[0].description)
	}
	if out.Target != (assistant.Target{}) {
		t.Errorf("ADD_REMINDER target = %+v, want zero", out.Target)
	}
}

func TestChatTriggerSOS(t *testing.T) {
	t.Run("patient dispatch", func(t *testing.T) {
		alerts := &mockAlertDispatcher{}
		uc := New(&mockLogger{}, nil, nil, alerts, 0, 0)

		out, err := uc.Chat(context.Background(), assistant.ChatInput{
			UserID: "p1",
			Role:   model.RolePatient,
			Text:   "I need help, SOS",
		})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if out.Action != assistant.ActionTriggerSOS {
			t.Fatalf("action = %q, want TRIGGER_SOS", out.Action)
		}
		if out.Reply != "Sending SOS to your guardian now!" {
			t.Errorf("reply = %q", out.Reply)
		}
		if len(alerts.calls) != 1 || alerts.calls[0] != "p1" {
			t.Errorf("alert dispatch calls = %v, want [p1]", alerts.calls)
		}
	})

	t.Run("unity gets the action without a dispatch", func(t *testing.T) {
		alerts := &mockAlertDispatcher{}
		uc := New(&mockLogger{}, nil, nil, alerts, 0, 0)

		out, err := uc.Chat(context.Background(), assistant.ChatInput{
			UserID: "u1",
			Role:   model.RoleUnity,
			Text:   "emergency",
		})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if out.Action != assistant.ActionTriggerSOS {
			t.Fatalf("action = %q, want TRIGGER_SOS", out.Action)
		}
		if len(alerts.calls) != 0 {
			t.Errorf("unity chat dispatched an alert: %v", alerts.calls)
		}
	})
}

func TestChatSideEffectFailure(t *testing.T) {
	alerts := &mockAlertDispatcher{err: errors.New("sns unreachable")}
	uc := New(&mockLogger{}, nil, nil, alerts, 0, 0)

	out, err := uc.Chat(context.Background(), assistant.ChatInput{
		UserID:   "p1",
		Role:     model.RolePatient,
		Text:     "sos",
		Language: "English",
	})
	if err != nil {
		t.Fatalf("Chat() must not surface side-effect errors, got %v", err)
	}
	if out.Action != assistant.ActionNone {
		t.Errorf("action = %q, want none after failure", out.Action)
	}
	if out.Reply != "I had a small problem. Please try again." {
		t.Errorf("reply = %q, want the generic failure reply", out.Reply)
	}
	if out.Target != (assistant.Target{}) {
		t.Errorf("target = %+v, want zero", out.Target)
	}
}

func TestChatEmptyInput(t *testing.T) {
	uc := New(&mockLogger{}, nil, nil, nil, 0, 0)

	_, err := uc.Chat(context.Background(), assistant.ChatInput{
		UserID: "p1",
		Role:   model.RolePatient,
		Text:   "   ",
	})
	if !errors.Is(err, assistant.ErrEmptyInput) {
		t.Errorf("Chat() error = %v, want ErrEmptyInput", err)
	}
}

func TestChatNavigationTarget(t *testing.T) {
	uc := New(&mockLogger{}, nil, nil, nil, 0, 0)

	out, err := uc.Chat(context.Background(), assistant.ChatInput{
		UserID: "p1",
		Role:   model.RolePatient,
		Text:   "open my medicines please",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	want := assistant.Target{URL: "/patient-dashboard", Tab: "p-medicine"}
	if out.Target != want {
		t.Errorf("target = %+v, want %+v", out.Target, want)
	}
}

func TestChatHistory(t *testing.T) {
	t.Run("cached turns feed the next prompt", func(t *testing.T) {
		llm := &mockGeminiClient{response: textResponse(`{"reply": "ok", "action": null, "confidence": 0.5}`)}
		uc := New(&mockLogger{}, llm, nil, nil, 0, 0)
		ctx := context.Background()

		if _, err := uc.Chat(ctx, assistant.ChatInput{UserID: "p1", Role: model.RolePatient, Text: "good morning"}); err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if _, err := uc.Chat(ctx, assistant.ChatInput{UserID: "p1", Role: model.RolePatient, Text: "and now?"}); err != nil {
			t.Fatalf("Chat() error = %v", err)
		}

		if !strings.Contains(llm.lastPrompt, "good morning") {
			t.Error("second prompt is missing the cached first turn")
		}
	})

	t.Run("request-supplied history wins", func(t *testing.T) {
		llm := &mockGeminiClient{response: textResponse(`{"reply": "ok", "action": null, "confidence": 0.5}`)}
		uc := New(&mockLogger{}, llm, nil, nil, 0, 0)

		_, err := uc.Chat(context.Background(), assistant.ChatInput{
			UserID:  "p1",
			Role:    model.RolePatient,
			Text:    "and now?",
			History: []assistant.Turn{{User: "client supplied line", Bot: "noted"}},
		})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if !strings.Contains(llm.lastPrompt, "client supplied line") {
			t.Error("prompt ignored request-supplied history")
		}
	})

	t.Run("history is capped to the configured turns", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, nil, nil, 16, 2)
		ctx := context.Background()

		for _, text := range []string{"one home", "two home", "three home"} {
			if _, err := uc.Chat(ctx, assistant.ChatInput{UserID: "p1", Role: model.RolePatient, Text: text}); err != nil {
				t.Fatalf("Chat() error = %v", err)
			}
		}

		turns := uc.recentTurns("p1")
		if len(turns) != 2 {
			t.Fatalf("recentTurns = %d entries, want 2", len(turns))
		}
		if turns[0].User != "two home" || turns[1].User != "three home" {
			t.Errorf("kept the wrong turns: %+v", turns)
		}
	})

	t.Run("concurrent turns are all kept", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, nil, nil, 16, 8)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				uc.recordTurn("p1", assistant.Turn{User: fmt.Sprintf("turn %d", n), Bot: "ok"})
			}(i)
		}
		wg.Wait()

		if turns := uc.recentTurns("p1"); len(turns) != 4 {
			t.Errorf("recentTurns = %d entries, want 4", len(turns))
		}
	})
}
