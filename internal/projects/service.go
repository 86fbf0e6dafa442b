package projects

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// cacheTTL bounds how often the external collaborator is re-fetched.
const cacheTTL = 30 * time.Minute

// Service caches project metadata for a fixed duration. A fetch failure
// never propagates: the last good snapshot (or an empty result) is served
// instead, so the chat pipeline is insulated from GitHub outages.
type Service struct {
	fetcher Fetcher
	ttl     time.Duration

	mu        sync.Mutex
	cached    []Project
	fetchedAt time.Time
	now       func() time.Time
}

func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		ttl:     cacheTTL,
		now:     time.Now,
	}
}

// Projects returns the current project list, refreshing the cache when it
// is older than the TTL.
func (s *Service) Projects(ctx context.Context) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetchedAt.IsZero() || s.now().Sub(s.fetchedAt) > s.ttl {
		fetched, err := s.fetcher.Fetch(ctx)
		if err != nil {
			slog.Warn("Project fetch failed, serving cached data", "error", err)
			// Push the retry out a little so a hard outage does not
			// turn every chat request into a failed fetch.
			s.fetchedAt = s.now().Add(-s.ttl + time.Minute)
			return s.cached
		}
		s.cached = fetched
		s.fetchedAt = s.now()
	}
	return s.cached
}

// Summary renders the cached projects as a short text block for prompt
// injection. Empty when nothing is available.
func (s *Service) Summary(ctx context.Context) string {
	projects := s.Projects(ctx)
	if len(projects) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range projects {
		fmt.Fprintf(&b, "- %s", p.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, ": %s", p.Description)
		}
		if p.Stars > 0 {
			fmt.Fprintf(&b, " (%d stars)", p.Stars)
		}
		if len(p.Topics) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(p.Topics, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
