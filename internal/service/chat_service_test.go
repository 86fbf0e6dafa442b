package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
)

// fakeGenerator scripts the generation backend: it returns the queued
// errors first, then the configured text.
type fakeGenerator struct {
	text     string
	failures []error
	calls    int
	lastReq  *llm.GenerationRequest
}

func (g *fakeGenerator) Generate(ctx context.Context, req *llm.GenerationRequest) (string, error) {
	g.calls++
	g.lastReq = req
	if len(g.failures) > 0 {
		err := g.failures[0]
		g.failures = g.failures[1:]
		return "", err
	}
	return g.text, nil
}

type fakeProjects struct {
	summary string
	calls   int
}

func (p *fakeProjects) Summary(ctx context.Context) string {
	p.calls++
	return p.summary
}

func newChatService(gen llm.Generator, projects service.ProjectSource) *service.ChatService {
	retriever := knowledge.NewRetriever(knowledge.NewStore())
	return service.NewChatService(retriever, gen, projects)
}

func TestHandleMessage_SuccessUsesBackendText(t *testing.T) {
	gen := &fakeGenerator{text: "Alex mostly writes Go these days."}
	svc := newChatService(gen, nil)

	reply := svc.HandleMessage(context.Background(), "what are your skills?", nil)

	require.NotNil(t, reply)
	assert.Equal(t, "Alex mostly writes Go these days.", reply.Message)
	assert.False(t, reply.Timestamp.IsZero())
	assert.Equal(t, 1, gen.calls)
}

func TestHandleMessage_BackendFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{failures: []error{apperrors.ErrBackendUnavailable}}
	svc := newChatService(gen, nil)

	reply := svc.HandleMessage(context.Background(), "What are your skills?", nil)

	require.NotNil(t, reply)
	assert.NotEmpty(t, reply.Message, "fallback must produce a non-empty answer")
	assert.Contains(t, reply.Message, "Python", "skills fallback interpolates the retrieved skills chunk")
	assert.Equal(t, 1, gen.calls, "non-rate-limit failures are not retried")
}

func TestHandleMessage_EmptyCompletionFallsBack(t *testing.T) {
	gen := &fakeGenerator{failures: []error{apperrors.ErrEmptyCompletion}}
	svc := newChatService(gen, nil)

	reply := svc.HandleMessage(context.Background(), "how can I contact you?", nil)
	require.NotNil(t, reply)
	assert.NotEmpty(t, reply.Message)
}

func TestHandleMessage_RetriesOnBackendRateLimit(t *testing.T) {
	gen := &fakeGenerator{
		text:     "here you go",
		failures: []error{apperrors.ErrBackendRateLimited, apperrors.ErrBackendRateLimited},
	}
	svc := newChatService(gen, nil)

	reply := svc.HandleMessage(context.Background(), "what do you do for work?", nil)

	assert.Equal(t, 3, gen.calls)
	assert.Equal(t, "here you go", reply.Message)
}

func TestHandleMessage_RateLimitExhaustionFallsBack(t *testing.T) {
	gen := &fakeGenerator{failures: []error{
		apperrors.ErrBackendRateLimited,
		apperrors.ErrBackendRateLimited,
		apperrors.ErrBackendRateLimited,
	}}
	svc := newChatService(gen, nil)

	reply := svc.HandleMessage(context.Background(), "where did you study?", nil)

	assert.Equal(t, 3, gen.calls)
	assert.NotEmpty(t, reply.Message)
}

func TestHandleMessage_ProjectContextFetchedOnlyOnTrigger(t *testing.T) {
	t.Run("project question fetches", func(t *testing.T) {
		projects := &fakeProjects{summary: "- archiver: a link archiver"}
		gen := &fakeGenerator{text: "ok"}
		svc := newChatService(gen, projects)

		svc.HandleMessage(context.Background(), "tell me about your projects", nil)

		assert.Equal(t, 1, projects.calls)
		require.NotNil(t, gen.lastReq)
		assert.Contains(t, gen.lastReq.System, "- archiver: a link archiver")
	})

	t.Run("other questions skip the fetch", func(t *testing.T) {
		projects := &fakeProjects{summary: "- archiver"}
		gen := &fakeGenerator{text: "ok"}
		svc := newChatService(gen, projects)

		svc.HandleMessage(context.Background(), "what are your skills?", nil)

		assert.Equal(t, 0, projects.calls)
	})
}

func TestHandleMessage_HistoryReachesComposer(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := newChatService(gen, nil)

	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}
	svc.HandleMessage(context.Background(), "what next?", history)

	require.NotNil(t, gen.lastReq)
	require.Len(t, gen.lastReq.Messages, 3)
	assert.Equal(t, "what next?", gen.lastReq.Messages[2].Content)
}
