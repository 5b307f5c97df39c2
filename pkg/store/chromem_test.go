package store

import (
	"context"
	"errors"
	"testing"

	"github.com/quietfold/docrag/pkg/docrag"
)

// cannedEmbedder returns fixed unit vectors by exact text.
type cannedEmbedder struct {
	vectors map[string][]float32
	dim     int
}

func (c *cannedEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := c.vectors[text]; ok {
		return v, nil
	}
	v := make([]float32, c.dim)
	v[c.dim-1] = 1
	return v, nil
}

func (c *cannedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := c.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *cannedEmbedder) Dimension() int    { return c.dim }
func (c *cannedEmbedder) ModelInfo() string { return "canned-v1" }

func newTestStore(t *testing.T) *ChromemStore {
	t.Helper()
	emb := &cannedEmbedder{
		dim: 3,
		vectors: map[string][]float32{
			"cats purr":        {1, 0, 0},
			"dogs bark":        {0, 1, 0},
			"query about cats": {1, 0, 0},
		},
	}
	s, err := NewChromemStore(emb)
	if err != nil {
		t.Fatalf("NewChromemStore failed: %v", err)
	}
	return s
}

func TestChromemStore_AddAndQuery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Add(ctx, []docrag.Passage{
		{Source: "a.txt", Text: "cats purr"},
		{Source: "b.txt", Text: "dogs bark"},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}

	results, err := s.Query(ctx, "query about cats", 1)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Passage.Text != "cats purr" || results[0].Passage.Source != "a.txt" {
		t.Errorf("top result = %+v, want the cats passage from a.txt", results[0].Passage)
	}
}

func TestChromemStore_KCappedAtCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, []docrag.Passage{{Source: "a.txt", Text: "cats purr"}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := s.Query(ctx, "query about cats", 50)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1 (all stored passages)", len(results))
	}
}

func TestChromemStore_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	results, err := s.Query(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("Query on empty store failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("empty store returned %d results, want 0", len(results))
	}
}

func TestChromemStore_InvalidK(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Query(context.Background(), "anything", 0)
	if !errors.Is(err, docrag.ErrInvalidArgument) {
		t.Errorf("Query with k=0: error = %v, want ErrInvalidArgument", err)
	}
}

func TestChromemStore_AddNothing(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(context.Background(), nil); err != nil {
		t.Errorf("Add with no passages failed: %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d after adding nothing, want 0", s.Count())
	}
}
