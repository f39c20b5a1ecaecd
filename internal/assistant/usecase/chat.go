package usecase

import (
	"context"

	"goldensage/internal/assistant"
	"goldensage/internal/model"
)

// Chat resolves an utterance end-to-end: resolve, run the action's side
// effect, record the turn, route to a client target. A side-effect failure
// is demoted to the generic failure reply so the assistant never surfaces
// internals to a senior user.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	utt := assistant.Utterance{
		Text:     input.Text,
		Role:     roleOrDefault(input.Role),
		Language: input.Language,
		UserID:   input.UserID,
		History:  input.History,
	}
	// Client-supplied history wins over the server cache.
	if len(utt.History) == 0 {
		utt.History = uc.recentTurns(input.UserID)
	}

	result, err := uc.Resolve(ctx, utt)
	if err != nil {
		return assistant.ChatOutput{}, err
	}

	if seErr := uc.dispatchSideEffect(ctx, utt, result); seErr != nil {
		uc.l.Errorf(ctx, "%s: side effect for %s failed: %v", LogPrefixChat, result.Action, seErr)
		result = assistant.IntentResult{
			Reply:  uc.replies.failureText(utt.Language),
			Action: assistant.ActionNone,
		}
	}

	uc.recordTurn(input.UserID, assistant.Turn{User: utt.Text, Bot: result.Reply})

	return assistant.ChatOutput{
		Reply:  result.Reply,
		Action: result.Action,
		Target: assistant.Route(result.Action),
	}, nil
}

// dispatchSideEffect runs the server-side effect of data-mutating actions.
// Only patients own reminder tasks and SOS alerts; for other roles these
// actions are reply-only.
func (uc *implUseCase) dispatchSideEffect(ctx context.Context, utt assistant.Utterance, result assistant.IntentResult) error {
	switch result.Action {
	case assistant.ActionAddReminder:
		if uc.reminders == nil || utt.Role != model.RolePatient {
			return nil
		}
		return uc.reminders.AddReminder(ctx, utt.UserID, utt.Text)
	case assistant.ActionTriggerSOS:
		if uc.alerts == nil || utt.Role != model.RolePatient {
			return nil
		}
		return uc.alerts.TriggerAlert(ctx, utt.UserID)
	default:
		return nil
	}
}

func (uc *implUseCase) recentTurns(userID string) []assistant.Turn {
	if uc.history == nil || userID == "" {
		return nil
	}
	turns, _ := uc.history.Get(userID)
	if len(turns) > uc.historyTurns {
		turns = turns[len(turns)-uc.historyTurns:]
	}
	return turns
}

// recordTurn appends one turn to the user's cached history. Cached slices
// are never appended to in place; every write stores a fresh copy so
// concurrent readers only ever see complete slices.
func (uc *implUseCase) recordTurn(userID string, turn assistant.Turn) {
	if uc.history == nil || userID == "" {
		return
	}

	uc.historyMu.Lock()
	defer uc.historyMu.Unlock()

	prev, _ := uc.history.Get(userID)
	turns := make([]assistant.Turn, 0, len(prev)+1)
	turns = append(turns, prev...)
	turns = append(turns, turn)
	if len(turns) > uc.historyTurns {
		turns = turns[len(turns)-uc.historyTurns:]
	}
	uc.history.Add(userID, turns)
}
