package usecase

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"goldensage/internal/assistant"
	"goldensage/pkg/gemini"
	"goldensage/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l   log.Logger
	llm gemini.IGemini // nil disables the generative tier

	reminders assistant.ReminderStore
	alerts    assistant.AlertDispatcher

	replies      replyCatalog
	history      *lru.Cache[string, []assistant.Turn]
	historyMu    sync.Mutex // serializes read-modify-write of cached turns
	historyTurns int
}

// New creates a new assistant UseCase implementation.
// llm may be nil; resolution then relies on the keyword tier alone.
func New(l log.Logger, llm gemini.IGemini, reminders assistant.ReminderStore, alerts assistant.AlertDispatcher, historySize, historyTurns int) *implUseCase {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	if historyTurns <= 0 {
		historyTurns = DefaultHistoryTurns
	}

	// lru.New only errors on non-positive size, which is guarded above.
	history, _ := lru.New[string, []assistant.Turn](historySize)

	return &implUseCase{
		l:            l,
		llm:          llm,
		reminders:    reminders,
		alerts:       alerts,
		replies:      newReplyCatalog(),
		history:      history,
		historyTurns: historyTurns,
	}
}
