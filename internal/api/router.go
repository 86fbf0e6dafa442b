package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, projectHandler *ProjectHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// The overall request budget: a chat turn that exceeds it aborts
		// with a timeout-class error instead of hanging on the backend.
		r.Use(middleware.Timeout(30 * time.Second))

		r.Post("/chat", chatHandler.HandleChat)
		r.Get("/projects", projectHandler.HandleListProjects)
	})

	// --- Frontend File Server ---
	// Serves the static portfolio pages. In production a CDN or reverse
	// proxy would typically sit in front of this.
	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}
