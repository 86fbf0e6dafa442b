package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/fallback"
	"portfolio/backend/internal/knowledge"
)

func TestRespond_IsTotal(t *testing.T) {
	// The fallback responder is the last line of defense: any input,
	// including empty everything, must yield a non-empty answer.
	inputs := []string{
		"",
		"   ",
		"what are your skills?",
		"asdfghjkl",
		"tell me something",
	}
	for _, msg := range inputs {
		assert.NotEmpty(t, fallback.Respond(msg, nil), "message %q", msg)
		assert.NotEmpty(t, fallback.Respond(msg, knowledge.NewStore().All()), "message %q", msg)
	}
}

func TestRespond_InterpolatesMatchingCategory(t *testing.T) {
	chunks := []knowledge.Chunk{
		{ID: "s", Content: "Alex's core skills are Python, Go, and TypeScript.", Category: knowledge.CategorySkills, Keywords: []string{"skills"}},
		{ID: "w", Content: "Alex works at a startup.", Category: knowledge.CategoryWork, Keywords: []string{"work"}},
	}

	reply := fallback.Respond("What are your skills?", chunks)
	assert.Contains(t, reply, "Python")
	assert.NotContains(t, reply, "startup")
}

func TestRespond_CannedAnswerWithoutMatchingChunks(t *testing.T) {
	// Topic matched but no chunk of that category was retrieved: the
	// hard-coded sentence for the topic is used.
	reply := fallback.Respond("where did you study?", nil)
	assert.Contains(t, reply, "Technical University of Berlin")
}

func TestRespond_PriorityOrderIsFixed(t *testing.T) {
	// A message hitting both the projects and cv rules must always
	// resolve to the earlier rule in the chain.
	first := fallback.Respond("send me the cv with your projects", nil)
	second := fallback.Respond("send me the cv with your projects", nil)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "GitHub", "projects rule precedes the cv rule")
}

func TestRespond_CVQuestion(t *testing.T) {
	reply := fallback.Respond("can I download your cv?", nil)
	assert.Contains(t, reply, "CV")
}

func TestRespond_NoRuleMatchSurfacesTopChunk(t *testing.T) {
	chunks := []knowledge.Chunk{
		{ID: "top", Content: "Top ranked snippet.", Category: knowledge.CategoryWork, Keywords: []string{"x"}},
		{ID: "other", Content: "Lower ranked snippet.", Category: knowledge.CategoryWork, Keywords: []string{"y"}},
	}
	reply := fallback.Respond("hmm interesting", chunks)
	assert.Contains(t, reply, "Top ranked snippet.")
	assert.NotContains(t, reply, "Lower ranked snippet.")
}

func TestRespond_NoMatchNoChunksReturnsTopicMenu(t *testing.T) {
	reply := fallback.Respond("xyzzy", nil)
	require.NotEmpty(t, reply)
	assert.Contains(t, reply, "skills")
	assert.Contains(t, reply, "get in touch")
}
