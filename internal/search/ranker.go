// Package search ranks stored session records against a query embedding
// using an in-memory cosine similarity scan. The linear scan is intentional;
// candidate sets are capped well below the point where an index would pay
// off. The Ranker interface isolates the scan so an indexed nearest-neighbor
// backend could replace it without touching ingestion.
package search

import (
	"math"
	"sort"
	"time"
)

// relevanceThreshold drops matches whose similarity is not strictly greater.
const relevanceThreshold = 0.45

// Candidate is a stored record considered during a search operation.
type Candidate struct {
	Embedding []float32
	Markdown  string
	Type      string
	CreatedAt time.Time
}

// Match is a scored search result.
type Match struct {
	Score     float64   `json:"score"`
	Markdown  string    `json:"markdown"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Ranker orders candidates by relevance to a query embedding.
type Ranker interface {
	Rank(query []float32, candidates []Candidate, limit int) []Match
}

// CosineRanker scores candidates by cosine similarity.
type CosineRanker struct{}

// NewCosineRanker constructs the default ranker.
func NewCosineRanker() CosineRanker {
	return CosineRanker{}
}

// Rank scores every candidate with a non-empty embedding, sorts descending,
// slices to limit, then keeps only matches scoring above the relevance
// threshold. The threshold runs after the slice, so fewer than limit matches
// come back when low-scoring candidates occupy the top slots; that ordering
// is part of the contract. Ties keep candidate order (the sort is stable).
// When query and candidate lengths differ, the dot product runs over the
// shared index range.
func (CosineRanker) Rank(query []float32, candidates []Candidate, limit int) []Match {
	if limit <= 0 {
		return []Match{}
	}

	magQ := magnitude(query)

	scored := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		// Records without an embedding are skipped, not scored as zero.
		if len(candidate.Embedding) == 0 {
			continue
		}
		scored = append(scored, Match{
			Score:     cosineSimilarity(query, magQ, candidate.Embedding),
			Markdown:  candidate.Markdown,
			Type:      candidate.Type,
			CreatedAt: candidate.CreatedAt,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}

	matches := make([]Match, 0, len(scored))
	for _, match := range scored {
		if match.Score > relevanceThreshold {
			matches = append(matches, match)
		}
	}
	return matches
}

// cosineSimilarity computes dot(q,d) / (|q|*|d|), defining the degenerate
// zero-magnitude case as 0 rather than an error.
func cosineSimilarity(query []float32, magQ float64, doc []float32) float64 {
	magD := magnitude(doc)
	denom := magQ * magD
	if denom == 0 {
		return 0
	}

	n := len(query)
	if len(doc) < n {
		n = len(doc)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(query[i]) * float64(doc[i])
	}
	return dot / denom
}

func magnitude(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}
