package embedder

import "context"

// SimpleEmbedder is a deterministic offline embedder using character
// accumulation. It carries no semantic signal worth trusting; it exists so
// the pipeline can run without network access and so tests get stable
// vectors.
type SimpleEmbedder struct {
	dim int
}

// NewSimpleEmbedder creates a deterministic offline embedder.
func NewSimpleEmbedder(dimension int) *SimpleEmbedder {
	return &SimpleEmbedder{dim: dimension}
}

// Embed generates a unit-length vector derived from the text's characters.
func (e *SimpleEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)

	for i, char := range text {
		idx := i % e.dim
		vec[idx] += float32(char) / 1000.0
	}

	l2normalize(vec)

	return vec, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (e *SimpleEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// Dimension returns the embedding dimension.
func (e *SimpleEmbedder) Dimension() int {
	return e.dim
}

// ModelInfo returns model information.
func (e *SimpleEmbedder) ModelInfo() string {
	return "simple-embedder-v1"
}
