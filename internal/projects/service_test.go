package projects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	projects []Project
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]Project, error) {
	f.calls++
	return f.projects, f.err
}

func newTestService(f *fakeFetcher) (*Service, *time.Time) {
	s := NewService(f)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestService_CachesWithinTTL(t *testing.T) {
	f := &fakeFetcher{projects: []Project{{Name: "archiver", Stars: 12}}}
	s, now := newTestService(f)
	ctx := context.Background()

	first := s.Projects(ctx)
	require.Len(t, first, 1)
	assert.Equal(t, 1, f.calls)

	*now = now.Add(10 * time.Minute)
	s.Projects(ctx)
	assert.Equal(t, 1, f.calls, "second call within the TTL must be served from cache")

	*now = now.Add(25 * time.Minute)
	s.Projects(ctx)
	assert.Equal(t, 2, f.calls, "cache older than the TTL must refetch")
}

func TestService_ServesStaleOnFetchFailure(t *testing.T) {
	f := &fakeFetcher{projects: []Project{{Name: "archiver"}}}
	s, now := newTestService(f)
	ctx := context.Background()

	require.Len(t, s.Projects(ctx), 1)

	f.err = errors.New("github is down")
	*now = now.Add(31 * time.Minute)

	got := s.Projects(ctx)
	assert.Len(t, got, 1, "fetch failure must serve the last good snapshot")
	assert.Equal(t, "archiver", got[0].Name)
}

func TestService_EmptyResultOnFirstFetchFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.New("github is down")}
	s, _ := newTestService(f)

	// Failure never propagates to the chat pipeline.
	assert.Empty(t, s.Projects(context.Background()))
	assert.Empty(t, s.Summary(context.Background()))
}

func TestSummary_RendersProjectLines(t *testing.T) {
	f := &fakeFetcher{projects: []Project{
		{Name: "archiver", Description: "a link archiver", Stars: 12, Topics: []string{"go", "selfhosted"}},
		{Name: "schemadiff"},
	}}
	s, _ := newTestService(f)

	summary := s.Summary(context.Background())
	assert.Contains(t, summary, "- archiver: a link archiver (12 stars) [go, selfhosted]")
	assert.Contains(t, summary, "- schemadiff")
}
