package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve maps one utterance to a reply, an action, and a confidence.
	Resolve(ctx context.Context, utt Utterance) (IntentResult, error)
	// Chat resolves an utterance, runs its side effect, records the turn,
	// and routes the action to a client target.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}

// ReminderStore persists reminder tasks produced by ADD_REMINDER.
type ReminderStore interface {
	AddReminder(ctx context.Context, patientID, description string) error
}

// AlertDispatcher raises an SOS alert produced by TRIGGER_SOS.
type AlertDispatcher interface {
	TriggerAlert(ctx context.Context, patientID string) error
}
