package docrag

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/quietfold/docrag/pkg/embedder"
)

// Retrieve embeds the query and returns the top-k passages by similarity,
// highest first.
//
// k must be positive; k larger than the index returns everything. An empty
// index yields an empty result without calling the embedder. Scoring is the
// dot product of query and passage vectors, which equals cosine similarity
// because this module's embedders return unit-length vectors; use
// CosineSimilarity when working with vectors from an unnormalized source.
func Retrieve(ctx context.Context, query string, idx *Index, k int, emb embedder.Embedder) ([]SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("top-k %d: %w", k, ErrInvalidArgument)
	}
	if idx.Len() == 0 {
		return nil, nil
	}

	queryVec, err := emb.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query %q: %w", query, err)
	}

	return idx.Rank(queryVec, k)
}

// Rank scores every entry against queryVec and returns the top-k results in
// descending score order. Ties keep insertion order, so results are
// deterministic.
func (idx *Index) Rank(queryVec []float32, k int) ([]SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("top-k %d: %w", k, ErrInvalidArgument)
	}
	if len(idx.entries) == 0 {
		return nil, nil
	}
	if idx.dimension != 0 && len(queryVec) != idx.dimension {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d: %w",
			len(queryVec), idx.dimension, ErrInvalidArgument)
	}

	results := make([]SearchResult, len(idx.entries))
	for i, entry := range idx.entries {
		results[i] = SearchResult{
			Passage: entry.Passage,
			Score:   Dot(queryVec, entry.Vector),
		}
	}

	// Stable sort preserves insertion order between equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < len(results) {
		results = results[:k]
	}

	return results, nil
}

// Dot computes the dot product of two vectors. For unit-length vectors this
// is the cosine similarity. Mismatched lengths score 0.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// CosineSimilarity computes the cosine similarity between two vectors,
// between -1 and 1. Unlike Dot it is correct for vectors of any magnitude;
// zero-magnitude or mismatched vectors score 0.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}
