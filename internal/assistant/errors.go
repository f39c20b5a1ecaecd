package assistant

import "errors"

var (
	// ErrEmptyInput means the utterance had no text after trimming whitespace.
	ErrEmptyInput = errors.New("utterance text is empty")
)
