package llm

import "context"

// Message is a single role-tagged turn handed to the generation backend.
// Roles use the pipeline vocabulary ("user"/"assistant"); each provider
// maps them to its own role names.
type Message struct {
	Role    string
	Content string
}

// GenerationRequest is the backend-agnostic input contract produced by the
// prompt composer: a system instruction, an ordered conversation, and fixed
// generation parameters.
type GenerationRequest struct {
	System          string
	Messages        []Message
	Temperature     float32
	MaxOutputTokens int32
}

// Generator defines the interface for the external language-model backend.
// Implementations return trimmed, non-empty text on success; empty output
// is reported as an error so callers can key their fallback path off
// failure alone.
type Generator interface {
	Generate(ctx context.Context, req *GenerationRequest) (string, error)
}
