package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apperrors "portfolio/backend/internal/errors"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Generator backed by the Gemini API. An empty
// apiKey is allowed: the genai client then resolves the ambient environment
// credential, and an unauthenticated "free tier" setup simply fails per
// call with a configuration-class error.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBackendConfig, err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

// Generate attempts a structured chat-completion call first. When the
// backend signals that it does not support that call shape, it retries once
// as a raw text completion with the whole conversation flattened into a
// single prompt. Retry and backoff for rate limits live in the caller.
func (p *geminiProvider) Generate(ctx context.Context, req *GenerationRequest) (string, error) {
	text, err := p.generateChat(ctx, req)
	if err != nil && isUnsupportedCallShape(err) {
		text, err = p.generateText(ctx, req)
	}
	if err != nil {
		return "", classify(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.ErrEmptyCompletion
	}
	return text, nil
}

// generateChat issues the structured call: role-tagged contents plus a
// system instruction.
func (p *geminiProvider) generateChat(ctx context.Context, req *GenerationRequest) (string, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// generateText issues the raw call shape: system instruction and history
// flattened into one prompt terminated by an assistant cue.
func (p *geminiProvider) generateText(ctx context.Context, req *GenerationRequest) (string, error) {
	prompt := FlattenPrompt(req)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// FlattenPrompt renders a generation request as a single prompt string for
// backends that only accept plain text completion.
func FlattenPrompt(req *GenerationRequest) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case "assistant":
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

// extractText walks candidates until it finds non-empty text, the same way
// responses are unpacked for other Gemini consumers.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var out strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				out.WriteString(part.Text)
			}
		}
		if out.Len() > 0 {
			break
		}
	}
	return out.String()
}

// isUnsupportedCallShape reports whether the backend rejected the
// structured chat call itself rather than the request content.
func isUnsupportedCallShape(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not supported") ||
		strings.Contains(msg, "unsupported") ||
		strings.Contains(msg, "does not support")
}

// classify maps raw backend failures onto the application error taxonomy.
// Gemini reports quota exhaustion as 429/RESOURCE_EXHAUSTED in the error
// string, credential problems as 401/403 statuses.
func classify(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", apperrors.ErrBackendRateLimited, err)
	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "API key"),
		strings.Contains(msg, "API_KEY_INVALID"),
		strings.Contains(msg, "UNAUTHENTICATED"),
		strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: %v", apperrors.ErrBackendConfig, err)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
}
