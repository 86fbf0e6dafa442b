package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/knowledge"
)

func TestStore_Invariants(t *testing.T) {
	store := knowledge.NewStore()
	chunks := store.All()
	require.NotEmpty(t, chunks)

	seen := make(map[string]bool)
	for _, c := range chunks {
		assert.NotEmpty(t, c.ID, "chunk ID must be set")
		assert.False(t, seen[c.ID], "chunk ID %q must be unique", c.ID)
		assert.NotEmpty(t, c.Content, "chunk %s must have content", c.ID)
		assert.NotEmpty(t, c.Keywords, "chunk %s must have keywords", c.ID)
		seen[c.ID] = true
	}
}

func TestStore_InsertionOrderIsStable(t *testing.T) {
	store := knowledge.NewStore()
	first := store.All()
	second := store.All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestNewStoreWith_RejectsInvalidChunks(t *testing.T) {
	valid := knowledge.Chunk{ID: "a", Content: "text", Category: knowledge.CategorySkills, Keywords: []string{"a"}}

	t.Run("duplicate ID", func(t *testing.T) {
		_, err := knowledge.NewStoreWith([]knowledge.Chunk{valid, valid})
		assert.Error(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := knowledge.NewStoreWith([]knowledge.Chunk{{ID: "b", Keywords: []string{"b"}}})
		assert.Error(t, err)
	})

	t.Run("no keywords", func(t *testing.T) {
		_, err := knowledge.NewStoreWith([]knowledge.Chunk{{ID: "c", Content: "text"}})
		assert.Error(t, err)
	})

	t.Run("valid table", func(t *testing.T) {
		store, err := knowledge.NewStoreWith([]knowledge.Chunk{valid})
		require.NoError(t, err)
		assert.Len(t, store.All(), 1)
	})
}
