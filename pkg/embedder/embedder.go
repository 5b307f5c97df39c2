package embedder

import (
	"context"
	"fmt"
)

// Embedder converts text into fixed-dimension vectors.
//
// Implementations in this module return unit-length (L2-normalized) vectors,
// so downstream dot products are exact cosine similarities. Dimension is
// fixed for the lifetime of an instance; vectors from different embedders are
// not comparable.
type Embedder interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch generates embeddings for multiple texts, one vector per
	// input, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension returns the embedding vector dimension.
	Dimension() int
	// ModelInfo returns a model name/version identifier.
	ModelInfo() string
}

// ProviderError reports a failed embedding call. The failing text travels
// with the error so callers can decide retry granularity.
type ProviderError struct {
	Provider string // e.g. "openai"
	Text     string // the input that failed to embed
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s embedding failed for %q: %v", e.Provider, snippet(e.Text), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// snippet shortens long inputs for error messages.
func snippet(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
