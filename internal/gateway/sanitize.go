// Package gateway validates, sanitizes, and rate-limits inbound chat
// requests before they reach the retrieval pipeline.
package gateway

import (
	"regexp"
	"strings"

	apperrors "portfolio/backend/internal/errors"
)

// MaxMessageLength is the pipeline's own cap on a single chat message.
// The presentation layer enforces a looser cap of its own; this one is
// authoritative for the backend.
const MaxMessageLength = 250

// Spam heuristic: messages of at least spamMinWords words whose
// unique-word ratio falls below spamUniqueRatio are rejected.
const (
	spamMinWords    = 8
	spamUniqueRatio = 0.4
)

var (
	schemeRe  = regexp.MustCompile(`(?i)(javascript|data):`)
	handlerRe = regexp.MustCompile(`(?i)on\w+\s*=`)

	// Misinformation heuristics: hearsay framings aimed at getting the
	// assistant to confirm third-party claims about the site owner.
	misinfoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bi\s+(think|heard|read|believe|was\s+told)\b.*\b(he|she|they|alex)\b.*\b(is|was|are|has|have)\b`),
		regexp.MustCompile(`(?i)\b(he|she|they|alex)\s+(is|was)\s+(not\s+real|fake|a\s+(fraud|scam|liar))\b`),
		regexp.MustCompile(`(?i)\b(someone|people|everyone)\s+(said|says|told\s+me)\b`),
	}
)

// Sanitize strips markup-injection vectors from the message, then runs the
// length, spam, and misinformation checks on the sanitized text, in that
// order. The returned string is what the pipeline should process.
func Sanitize(message string) (string, error) {
	s := strings.ReplaceAll(message, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = schemeRe.ReplaceAllString(s, "")
	s = handlerRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if s == "" {
		return "", apperrors.ErrEmptyMessage
	}
	if len(s) > MaxMessageLength {
		return "", apperrors.ErrMessageTooLong
	}
	if isSpam(s) {
		return "", apperrors.ErrSpam
	}
	if isMisinformation(s) {
		return "", apperrors.ErrMisinformation
	}
	return s, nil
}

func isSpam(s string) bool {
	words := strings.Fields(strings.ToLower(s))
	if len(words) < spamMinWords {
		return false
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	return float64(len(unique))/float64(len(words)) < spamUniqueRatio
}

func isMisinformation(s string) bool {
	for _, re := range misinfoPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
