// Package knowledge holds the chatbot's hand-written knowledge base and the
// keyword-overlap retriever that ranks it against visitor questions.
package knowledge

import "fmt"

// Chunk categories. Used both for retrieval scoring context and for
// fallback-template dispatch.
const (
	CategoryPersonal   = "personal"
	CategoryWork       = "work"
	CategoryEducation  = "education"
	CategorySkills     = "skills"
	CategoryProjects   = "projects"
	CategoryLeadership = "leadership"
	CategoryCV         = "cv"
	CategoryLinks      = "links"
)

// Chunk is a single retrievable knowledge snippet.
type Chunk struct {
	ID       string
	Content  string
	Category string
	Keywords []string
}

// Store is an immutable, in-memory collection of chunks. It is populated
// once at construction and never mutated afterwards.
type Store struct {
	chunks []Chunk
}

// NewStore builds the store from the built-in knowledge table.
func NewStore() *Store {
	return &Store{chunks: defaultChunks}
}

// NewStoreWith builds a store from a caller-supplied chunk table. It returns
// an error when a chunk violates the store invariants (unique non-empty ID,
// non-empty content, at least one keyword).
func NewStoreWith(chunks []Chunk) (*Store, error) {
	seen := make(map[string]bool, len(chunks))
	for _, c := range chunks {
		if c.ID == "" || seen[c.ID] {
			return nil, fmt.Errorf("chunk ID %q is empty or duplicated", c.ID)
		}
		if c.Content == "" {
			return nil, fmt.Errorf("chunk %s has empty content", c.ID)
		}
		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("chunk %s has no keywords", c.ID)
		}
		seen[c.ID] = true
	}
	return &Store{chunks: chunks}, nil
}

// All returns every chunk in insertion order. Callers must treat the
// returned slice as read-only.
func (s *Store) All() []Chunk {
	return s.chunks
}

// defaultChunks is the site owner's knowledge base. Keywords are lowercase
// trigger terms matched as substrings of the visitor's question.
var defaultChunks = []Chunk{
	{
		ID:       "about-intro",
		Category: CategoryPersonal,
		Content:  "Alex Carter is a full-stack software developer based in Berlin who builds web applications and backend services. Alex enjoys turning rough product ideas into working software and contributes to open-source projects in spare time.",
		Keywords: []string{"who", "about", "alex", "yourself", "introduce", "person", "background"},
	},
	{
		ID:       "about-languages",
		Category: CategoryPersonal,
		Content:  "Alex speaks English fluently, German at a conversational level, and is learning Spanish.",
		Keywords: []string{"speak", "language", "languages", "english", "german", "spanish"},
	},
	{
		ID:       "work-current",
		Category: CategoryWork,
		Content:  "Alex currently works as a senior software engineer at a logistics startup, building APIs and data pipelines that move millions of shipment events per day. Before that, Alex spent three years at a fintech company working on payment infrastructure.",
		Keywords: []string{"work", "working", "job", "company", "experience", "career", "employer", "startup"},
	},
	{
		ID:       "education-degree",
		Category: CategoryEducation,
		Content:  "Alex holds a BSc in Computer Science from the Technical University of Berlin, with a final-year focus on distributed systems and information retrieval.",
		Keywords: []string{"education", "degree", "university", "study", "studied", "school", "bsc"},
	},
	{
		ID:       "skills-stack",
		Category: CategorySkills,
		Content:  "Alex's core skills are Python, Go, and TypeScript, with production experience in React, Next.js, Node.js, PostgreSQL, Redis, and Docker. Alex is comfortable across the stack, from database schema design to frontend state management.",
		Keywords: []string{"skills", "skill", "stack", "technologies", "technology", "python", "golang", "typescript", "react"},
	},
	{
		ID:       "skills-practices",
		Category: CategorySkills,
		Content:  "Day to day, Alex practices test-driven development, reviews code for a team of five, and runs services on Kubernetes with CI/CD pipelines in GitHub Actions.",
		Keywords: []string{"testing", "kubernetes", "devops", "ci", "practices", "tooling"},
	},
	{
		ID:       "projects-portfolio",
		Category: CategoryProjects,
		Content:  "Alex's public projects include this portfolio site with its retrieval-augmented chatbot, a self-hosted link archiver, and a CLI tool for diffing PostgreSQL schemas. All of them are open source on GitHub.",
		Keywords: []string{"project", "projects", "built", "build", "portfolio", "repo", "github", "open source"},
	},
	{
		ID:       "leadership-mentoring",
		Category: CategoryLeadership,
		Content:  "Alex leads a backend guild at work, mentors two junior engineers, and has organized internal workshops on API design and incident response.",
		Keywords: []string{"lead", "leadership", "mentor", "mentoring", "team", "guild", "workshop"},
	},
	{
		ID:       "cv-download",
		Category: CategoryCV,
		Content:  "A current copy of Alex's CV is available from the site footer as a PDF download. It covers work history, education, and selected projects on a single page.",
		Keywords: []string{"cv", "resume", "résumé", "download", "hire", "hiring", "pdf"},
	},
	{
		ID:       "links-contact",
		Category: CategoryLinks,
		Content:  "The best way to reach Alex is the contact form on this site or by email at hello@alexcarter.dev. Alex is also on GitHub and LinkedIn under the handle alexcarter-dev.",
		Keywords: []string{"contact", "email", "reach", "linkedin", "social", "message", "connect"},
	},
}
