// Package fallback is the deterministic, rule-based responder used when the
// generation backend fails. It is the last line of defense and therefore
// total: it always returns a non-empty string.
package fallback

import (
	"strings"

	"portfolio/backend/internal/knowledge"
)

// rule pairs a set of trigger substrings with a response template. Rules
// are evaluated in declaration order, first match wins; the priority order
// is deliberate and load-bearing (a message containing both "cv" and
// "project" must always resolve the same way).
type rule struct {
	triggers []string
	category string
	intro    string
	canned   string
}

var rules = []rule{
	{
		triggers: []string{"skill", "stack", "technolog", "tech"},
		category: knowledge.CategorySkills,
		intro:    "Here is what Alex works with:",
		canned:   "Alex is a full-stack developer working mainly with Python, Go, and TypeScript. Ask about a specific technology for more detail.",
	},
	{
		triggers: []string{"work", "job", "experience", "career", "company", "employer"},
		category: knowledge.CategoryWork,
		intro:    "About Alex's work experience:",
		canned:   "Alex currently works as a senior software engineer building backend services. The CV has the full work history.",
	},
	{
		triggers: []string{"project", "built", "build", "portfolio", "repo", "github"},
		category: knowledge.CategoryProjects,
		intro:    "On the projects side:",
		canned:   "Alex's open-source projects are listed on the projects page and on GitHub under alexcarter-dev.",
	},
	{
		triggers: []string{"education", "degree", "university", "study", "school"},
		category: knowledge.CategoryEducation,
		intro:    "About Alex's education:",
		canned:   "Alex studied Computer Science at the Technical University of Berlin.",
	},
	{
		triggers: []string{"cv", "resume", "résumé"},
		category: knowledge.CategoryCV,
		intro:    "About the CV:",
		canned:   "You can download Alex's CV as a PDF from the site footer.",
	},
	{
		triggers: []string{"contact", "email", "linkedin", "reach", "connect", "link"},
		category: knowledge.CategoryLinks,
		intro:    "Getting in touch:",
		canned:   "The easiest way to reach Alex is the contact form on this site.",
	},
	{
		triggers: []string{"who", "about", "yourself", "introduce", "alex"},
		category: knowledge.CategoryPersonal,
		intro:    "A bit about Alex:",
		canned:   "Alex Carter is a full-stack software developer based in Berlin.",
	},
	{
		triggers: []string{"language", "speak"},
		category: knowledge.CategoryPersonal,
		intro:    "On languages:",
		canned:   "Alex speaks English and German, and is learning Spanish.",
	},
	{
		triggers: []string{"lead", "mentor", "team", "manage"},
		category: knowledge.CategoryLeadership,
		intro:    "About leadership:",
		canned:   "Alex leads a backend guild and mentors junior engineers.",
	},
}

const topicMenu = "I can tell you about Alex's skills, work experience, education, projects, leadership, or how to get in touch — what would you like to know?"

const followUp = "Is there anything else about Alex you would like to know?"

// Respond produces a templated answer from the latest user message and the
// chunks retrieved for it. It never fails and never returns an empty string.
func Respond(latest string, chunks []knowledge.Chunk) string {
	msg := strings.ToLower(latest)

	for _, r := range rules {
		if !r.matches(msg) {
			continue
		}
		if text := contentForCategory(chunks, r.category); text != "" {
			return r.intro + " " + text
		}
		return r.canned
	}

	// No topic matched: surface the best-scored chunk verbatim, or the
	// topic menu when retrieval came back empty.
	if len(chunks) > 0 {
		return chunks[0].Content + " " + followUp
	}
	return topicMenu
}

func (r rule) matches(msg string) bool {
	for _, t := range r.triggers {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}

// contentForCategory joins the content of retrieved chunks matching the
// rule's category, in retrieval order. Empty when none match.
func contentForCategory(chunks []knowledge.Chunk, category string) string {
	var parts []string
	for _, c := range chunks {
		if c.Category == category {
			parts = append(parts, c.Content)
		}
	}
	return strings.Join(parts, " ")
}
