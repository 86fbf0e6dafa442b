package interfaces

import (
	"context"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/projects"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via fakes.

// ChatService defines the contract for one chat turn. It never fails;
// generation backend errors are absorbed by the fallback responder.
type ChatService interface {
	HandleMessage(ctx context.Context, message string, history []model.ChatMessage) *model.ChatReply
}

// ProjectService defines the contract for the cached project-metadata view
// served to the site's project widgets.
type ProjectService interface {
	Projects(ctx context.Context) []projects.Project
}
