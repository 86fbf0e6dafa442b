// Package prompt assembles the generation backend's input from retrieved
// knowledge, project data, and the trailing conversation window.
package prompt

import (
	"fmt"
	"strings"

	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/model"
)

const (
	// historyWindow is the number of trailing conversation turns kept
	// for prompt composition. Older turns are dropped, never mutated.
	historyWindow = 10

	temperature     = 0.7
	maxOutputTokens = 512
)

// genericContext replaces the knowledge block when retrieval found nothing.
// The composer never emits an empty knowledge-context section.
const genericContext = "No specific background snippets matched this question. Alex Carter is a full-stack software developer; offer to answer questions about skills, work experience, education, or projects."

const personaRules = `You are the assistant on Alex Carter's personal portfolio website. You answer visitor questions about Alex in a friendly, concise, professional tone, speaking about Alex in the third person.

Rules:
- Greet the visitor at most once, at the start of the conversation. Never repeat a greeting.
- Answer strictly from the context below. If the answer is not contained in the context, say so politely and point the visitor to the contact form instead of guessing.
- Keep answers short: a few sentences, no markdown headings.`

// WantsProjectContext reports whether the visitor's message should pull
// project metadata into the prompt. This is a targeted augmentation rule,
// not a retrieval step.
func WantsProjectContext(message string) bool {
	return strings.Contains(strings.ToLower(message), "project")
}

// Compose builds the generation request: a system instruction carrying the
// persona rules and the retrieved knowledge context, the trailing history
// window, and the current message as the final user turn.
func Compose(history []model.ChatMessage, latest string, chunks []knowledge.Chunk, projectContext string) *llm.GenerationRequest {
	var system strings.Builder
	system.WriteString(personaRules)
	system.WriteString("\n\nContext about Alex:\n")
	if len(chunks) == 0 {
		system.WriteString(genericContext)
	} else {
		for i, c := range chunks {
			fmt.Fprintf(&system, "%d. %s\n", i+1, c.Content)
		}
	}
	if projectContext != "" && WantsProjectContext(latest) {
		system.WriteString("\nCurrent GitHub projects:\n")
		system.WriteString(projectContext)
	}

	messages := make([]llm.Message, 0, historyWindow+1)
	for _, turn := range trailingWindow(history, historyWindow) {
		// Display-only roles (system banners, error bubbles) never
		// reach the backend.
		if turn.Role != model.RoleUser && turn.Role != model.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: model.RoleUser, Content: latest})

	return &llm.GenerationRequest{
		System:          system.String(),
		Messages:        messages,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	}
}

func trailingWindow(history []model.ChatMessage, n int) []model.ChatMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
