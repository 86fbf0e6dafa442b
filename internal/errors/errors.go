package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// business rule validation (malformed body, missing fields).
	// Mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMessage signifies that sanitization stripped all content
	// from the incoming chat message.
	// Mapped to a 400 Bad Request HTTP status.
	ErrEmptyMessage = errors.New("message is empty after sanitization")

	// ErrMessageTooLong signifies that the chat message exceeds the
	// maximum length accepted by the pipeline.
	// Mapped to a 400 Bad Request HTTP status.
	ErrMessageTooLong = errors.New("message exceeds maximum length")

	// ErrSpam signifies that the message failed the word-uniqueness
	// spam heuristic.
	// Mapped to a 400 Bad Request HTTP status.
	ErrSpam = errors.New("message flagged as spam")

	// ErrMisinformation signifies that the message matched one of the
	// misinformation-pattern heuristics (third-party claims about the
	// site owner).
	// Mapped to a 400 Bad Request HTTP status.
	ErrMisinformation = errors.New("message flagged as misinformation")

	// ErrRateLimited signifies that the client exceeded the allowed
	// number of requests within the current window.
	// Mapped to a 429 Too Many Requests HTTP status.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrBackendConfig signifies that the generation backend is
	// misconfigured (missing or rejected credential).
	// Mapped to a 503 Service Unavailable HTTP status.
	ErrBackendConfig = errors.New("generation backend misconfigured")

	// ErrBackendRateLimited signifies that the generation backend rejected
	// the call because of quota exhaustion. The orchestrator retries this
	// class with a short backoff before falling back.
	ErrBackendRateLimited = errors.New("generation backend rate limited")

	// ErrBackendUnavailable signifies a network or transport failure while
	// reaching the generation backend.
	// Mapped to a 503 Service Unavailable HTTP status.
	ErrBackendUnavailable = errors.New("generation backend unavailable")

	// ErrEmptyCompletion signifies that the generation backend returned
	// empty or whitespace-only output. This is a distinct failure rather
	// than a success with empty content, because the fallback path is
	// keyed off failure, not off content inspection.
	ErrEmptyCompletion = errors.New("generation backend returned empty output")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// Mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
