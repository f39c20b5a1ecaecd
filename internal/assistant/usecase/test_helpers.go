package usecase

import (
	"context"

	"goldensage/pkg/gemini"
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

// Mock Gemini client for testing
type mockGeminiClient struct {
	response   *gemini.GenerateResponse
	err        error
	lastPrompt string
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
		m.lastPrompt = req.Contents[0].Parts[0].Text
	}
	return m.response, m.err
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// Mock reminder store
type reminderCall struct {
	patientID   string
	description string
}

type mockReminderStore struct {
	calls []reminderCall
	err   error
}

func (m *mockReminderStore) AddReminder(ctx context.Context, patientID, description string) error {
	m.calls = append(m.calls, reminderCall{patientID: patientID, description: description})
	return m.err
}

// Mock alert dispatcher
type mockAlertDispatcher struct {
	calls []string
	err   error
}

func (m *mockAlertDispatcher) TriggerAlert(ctx context.Context, patientID string) error {
	m.calls = append(m.calls, patientID)
	return m.err
}
