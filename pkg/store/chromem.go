// Package store provides an alternate retrieval backend on top of
// chromem-go. It serves the same embed-and-rank contract as the in-memory
// index and exists as the substitution point for corpora too large for a
// plain linear scan.
package store

import (
	"context"
	"fmt"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/quietfold/docrag/pkg/docrag"
	"github.com/quietfold/docrag/pkg/embedder"
)

const collectionName = "passages"

// ChromemStore holds passages in a chromem-go collection and answers top-k
// similarity queries against it.
type ChromemStore struct {
	collection *chromem.Collection
	count      int
}

// toEmbeddingFunc adapts an Embedder to chromem's single-text callback.
func toEmbeddingFunc(e embedder.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.Embed(ctx, text)
	}
}

// NewChromemStore creates an in-memory store that embeds with emb.
func NewChromemStore(emb embedder.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, toEmbeddingFunc(emb))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &ChromemStore{collection: col}, nil
}

// Add embeds and stores the given passages. IDs follow insertion order.
func (s *ChromemStore) Add(ctx context.Context, passages []docrag.Passage) error {
	if len(passages) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(passages))
	for i, p := range passages {
		docs[i] = chromem.Document{
			ID:       strconv.Itoa(s.count + i),
			Content:  p.Text,
			Metadata: map[string]string{"source": p.Source},
		}
	}

	if err := s.collection.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	s.count += len(passages)
	return nil
}

// Query returns up to k passages most similar to the query text, highest
// similarity first. k must be positive; an empty store returns no results.
func (s *ChromemStore) Query(ctx context.Context, query string, k int) ([]docrag.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("top-k %d: %w", k, docrag.ErrInvalidArgument)
	}

	// chromem-go requires nResults <= collection size.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	out := make([]docrag.SearchResult, len(results))
	for i, r := range results {
		out[i] = docrag.SearchResult{
			Passage: docrag.Passage{
				Source: r.Metadata["source"],
				Text:   r.Content,
			},
			Score: r.Similarity,
		}
	}
	return out, nil
}

// Count returns the number of stored passages.
func (s *ChromemStore) Count() int {
	return s.collection.Count()
}
