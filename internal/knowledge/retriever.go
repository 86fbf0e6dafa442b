package knowledge

import (
	"sort"
	"strings"
)

// Scoring weights. Curated keyword hits count for more than incidental
// content overlap.
const (
	keywordWeight = 0.6
	contentWeight = 0.4
)

// scoredChunk pairs a chunk with its per-query relevance score. It is
// discarded after ranking; the chunk itself is never copied or mutated.
type scoredChunk struct {
	chunk Chunk
	score float64
}

// Retriever ranks the store's chunks against a free-text query using a
// keyword-overlap heuristic. This is deliberately not embedding-based:
// the ranking is part of the system's observable behavior.
type Retriever struct {
	store *Store
}

func NewRetriever(store *Store) *Retriever {
	return &Retriever{store: store}
}

// Retrieve returns at most topK chunks with a strictly positive relevance
// score, ordered by descending score. Ties keep the store's insertion order.
// An empty or whitespace-only query returns nil: matching the empty string
// inside any keyword trivially succeeds and would otherwise return
// arbitrary chunks.
func (r *Retriever) Retrieve(query string, topK int) []Chunk {
	if topK <= 0 {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	tokens := strings.Fields(q)

	chunks := r.store.All()
	scored := make([]scoredChunk, 0, len(chunks))
	for _, c := range chunks {
		s := score(q, tokens, c)
		if s > 0 {
			scored = append(scored, scoredChunk{chunk: c, score: s})
		}
	}

	// Stable sort so equal scores preserve insertion order; downstream
	// category grouping depends on deterministic ordering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	result := make([]Chunk, len(scored))
	for i, sc := range scored {
		result[i] = sc.chunk
	}
	return result
}

// score computes 0.6*keywordScore + 0.4*contentScore for one chunk.
// keywordScore is the fraction of the chunk's keywords that appear as a
// substring of the lowercased query; contentScore is the fraction of query
// tokens that appear as a substring of the lowercased chunk content. The
// token count is taken over the token sequence, not a set, so repeated
// tokens weigh the denominator.
func score(query string, tokens []string, c Chunk) float64 {
	keywordHits := 0
	for _, kw := range c.Keywords {
		if strings.Contains(query, kw) {
			keywordHits++
		}
	}
	keywordScore := float64(keywordHits) / float64(len(c.Keywords))

	contentScore := 0.0
	if len(tokens) > 0 {
		content := strings.ToLower(c.Content)
		tokenHits := 0
		for _, t := range tokens {
			if strings.Contains(content, t) {
				tokenHits++
			}
		}
		contentScore = float64(tokenHits) / float64(len(tokens))
	}

	return keywordWeight*keywordScore + contentWeight*contentScore
}
