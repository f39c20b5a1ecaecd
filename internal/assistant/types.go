package assistant

import "goldensage/internal/model"

// Turn is one exchange of a conversation.
type Turn struct {
	User string
	Bot  string
}

// Utterance is a single piece of user text to resolve.
type Utterance struct {
	Text     string
	Role     model.Role
	Language string
	UserID   string
	History  []Turn
}

// IntentResult is the resolver verdict for one utterance.
type IntentResult struct {
	Reply      string
	Action     Action
	Confidence float64
}

// ChatInput is the input for the Chat operation.
type ChatInput struct {
	UserID   string
	Role     model.Role
	Text     string
	Language string
	History  []Turn
}

// ChatOutput is the result of the Chat operation, ready for the client.
type ChatOutput struct {
	Reply  string
	Action Action
	Target Target
}
