package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/fallback"
	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/prompt"
)

const (
	// retrieveTopK is how many knowledge chunks are pulled per question.
	retrieveTopK = 3

	// Generation retry policy: only the backend rate-limit class is
	// retried, with a short delay multiplied by the attempt count.
	maxGenerateAttempts = 3
	retryBaseDelay      = 500 * time.Millisecond
)

// ProjectSource supplies the project-context block for prompt injection.
type ProjectSource interface {
	Summary(ctx context.Context) string
}

// ChatService orchestrates one chat turn: retrieve, compose, generate,
// and fall back. Input is expected to have passed the gateway already.
type ChatService struct {
	retriever *knowledge.Retriever
	generator llm.Generator
	projects  ProjectSource
}

func NewChatService(retriever *knowledge.Retriever, generator llm.Generator, projects ProjectSource) *ChatService {
	return &ChatService{retriever: retriever, generator: generator, projects: projects}
}

// HandleMessage answers one sanitized visitor message. It never fails: any
// generation backend failure is silently substituted with the fallback
// responder's output, so callers only ever see gateway-level errors.
func (s *ChatService) HandleMessage(ctx context.Context, message string, history []model.ChatMessage) *model.ChatReply {
	chunks := s.retriever.Retrieve(message, retrieveTopK)

	var projectContext string
	if s.projects != nil && prompt.WantsProjectContext(message) {
		projectContext = s.projects.Summary(ctx)
	}

	req := prompt.Compose(history, message, chunks, projectContext)

	text, err := s.generate(ctx, req)
	if err != nil {
		slog.Warn("Generation failed, using fallback responder", "error", err)
		text = fallback.Respond(message, chunks)
	}

	return &model.ChatReply{Message: text, Timestamp: time.Now()}
}

// generate calls the backend with bounded retries on its rate-limit error
// class. Every other failure class goes straight back to the caller.
func (s *ChatService) generate(ctx context.Context, req *llm.GenerationRequest) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		text, err := s.generator.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !errors.Is(err, apperrors.ErrBackendRateLimited) {
			return "", err
		}
		if attempt < maxGenerateAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBaseDelay):
			}
		}
	}
	return "", lastErr
}
