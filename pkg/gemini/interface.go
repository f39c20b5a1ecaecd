package gemini

import "context"

// IGemini abstracts the Gemini client for consumers and tests.
// Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

var _ IGemini = (*Client)(nil)
