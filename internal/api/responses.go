package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "portfolio/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
// `error` is a stable machine-readable label; `details` is a friendly,
// non-technical hint. Internal error detail is logged, never returned.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps the sentinel errors onto HTTP status codes and a generic client
// message; anything unrecognized becomes a 500.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var label, details string

	switch {
	case errors.Is(err, apperrors.ErrEmptyMessage):
		statusCode = http.StatusBadRequest
		label, details = "empty_message", "Your message was empty after removing unsafe content."
	case errors.Is(err, apperrors.ErrMessageTooLong):
		statusCode = http.StatusBadRequest
		label, details = "message_too_long", "Please keep messages under 250 characters."
	case errors.Is(err, apperrors.ErrSpam):
		statusCode = http.StatusBadRequest
		label, details = "spam_detected", "Your message looks repetitive. Please rephrase it."
	case errors.Is(err, apperrors.ErrMisinformation):
		statusCode = http.StatusBadRequest
		label, details = "message_rejected", "I can only answer questions about Alex based on verified information."
	case errors.Is(err, apperrors.ErrValidation):
		statusCode = http.StatusBadRequest
		label, details = "invalid_request", err.Error()
	case errors.Is(err, apperrors.ErrRateLimited):
		statusCode = http.StatusTooManyRequests
		label, details = "rate_limited", "Too many messages. Please wait a moment and try again."
	case errors.Is(err, apperrors.ErrBackendConfig), errors.Is(err, apperrors.ErrBackendUnavailable):
		statusCode = http.StatusServiceUnavailable
		label, details = "service_unavailable", "The assistant is temporarily unavailable. Please try again later."
	case errors.Is(err, apperrors.ErrEmptyCompletion):
		statusCode = http.StatusInternalServerError
		label, details = "empty_response", "The assistant could not produce an answer. Please try again."
	default:
		statusCode = http.StatusInternalServerError
		label, details = "internal_error", "Something went wrong. Please try again."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "label", label, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: label, Details: details})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
