// Package projects is the read-only project-data collaborator: it fetches
// the site owner's repository metadata from GitHub and caches it for prompt
// injection and the projects widget.
package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
)

// Project is the repository metadata exposed to the rest of the system.
type Project struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Topics      []string  `json:"topics"`
	PushedAt    time.Time `json:"pushed_at"`
}

// Fetcher abstracts the external fetch so the cache layer and tests do not
// depend on the GitHub client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Project, error)
}

type githubFetcher struct {
	client *github.Client
	owner  string
}

// NewGitHubFetcher creates a Fetcher for the given repository owner. An
// empty token is supported: the client then runs unauthenticated against
// GitHub's public rate limits.
func NewGitHubFetcher(owner, token string) Fetcher {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &githubFetcher{client: client, owner: owner}
}

func (f *githubFetcher) Fetch(ctx context.Context) ([]Project, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: 10},
	}
	repos, _, err := f.client.Repositories.ListByUser(ctx, f.owner, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", f.owner, err)
	}

	projects := make([]Project, 0, len(repos))
	for _, r := range repos {
		if r.GetFork() || r.GetArchived() {
			continue
		}
		projects = append(projects, Project{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Topics:      r.Topics,
			PushedAt:    r.GetPushedAt().Time,
		})
	}
	return projects, nil
}
