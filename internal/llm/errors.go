package llm

import "errors"

// The client collapses every failure into one of these sentinels so callers
// can branch with errors.Is: Luna falls back to deterministic suggestions on
// ErrOllamaUnavailable and ErrTimeout, and treats ErrInvalidOutput as the
// model returning something other than the requested shape.
var (
	ErrOllamaUnavailable = errors.New("ollama server unavailable")
	ErrTimeout           = errors.New("llm request timed out")
	ErrInvalidOutput     = errors.New("invalid llm output format")
	ErrRetryExhausted    = errors.New("llm retry attempts exhausted")
)
