package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"goldensage/internal/assistant"
	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

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

type mockUseCase struct {
	output assistant.ChatOutput
	err    error
	input  assistant.ChatInput
}

func (m *mockUseCase) Resolve(ctx context.Context, utt assistant.Utterance) (assistant.IntentResult, error) {
	return assistant.IntentResult{}, nil
}

func (m *mockUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	m.input = input
	return m.output, m.err
}

func performChat(t *testing.T, uc assistant.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxUserIDKey, "p1")
	c.Set(middleware.CtxRoleKey, "patient")

	h := New(&mockLogger{}, uc)
	h.Chat(c)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{output: assistant.ChatOutput{
			Reply:  "Opening your medicines.",
			Action: assistant.ActionNavigateMedicine,
			Target: assistant.Target{URL: "/patient-dashboard", Tab: "p-medicine"},
		}}

		w := performChat(t, uc, `{"text": "my pills", "lang_name": "English"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data := resp.Data.(map[string]interface{})
		if data["action"] != "NAVIGATE_MEDICINE" {
			t.Errorf("action = %v", data["action"])
		}
		if data["url"] != "/patient-dashboard" || data["tab"] != "p-medicine" {
			t.Errorf("target = %v / %v", data["url"], data["tab"])
		}
		if uc.input.UserID != "p1" {
			t.Errorf("usecase got user %q, want p1", uc.input.UserID)
		}
	})

	t.Run("null action serializes as null", func(t *testing.T) {
		uc := &mockUseCase{output: assistant.ChatOutput{Reply: "I'm here!"}}

		w := performChat(t, uc, `{"text": "hello"}`)

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		var data map[string]json.RawMessage
		if err := json.Unmarshal(raw["data"], &data); err != nil {
			t.Fatalf("unmarshal data error: %v", err)
		}
		if string(data["action"]) != "null" {
			t.Errorf("action = %s, want null", data["action"])
		}
	})

	t.Run("empty text is a 400", func(t *testing.T) {
		uc := &mockUseCase{err: assistant.ErrEmptyInput}

		w := performChat(t, uc, `{"text": "   "}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
