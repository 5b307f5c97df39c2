package docrag

import (
	"context"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/quietfold/docrag/pkg/chunker"
	"github.com/quietfold/docrag/pkg/embedder"
)

// BuildIndex chunks every document and embeds every passage, returning an
// immutable index ready for retrieval.
//
// chunkSize must be positive. An empty corpus yields a valid empty index. If
// any embedding call fails the whole build fails: the error wraps the
// embedder's *ProviderError and names the passage index and source document,
// and no index is returned — a corpus with silently missing vectors would
// rank incorrectly without signaling data loss.
func BuildIndex(ctx context.Context, docs []Document, chunkSize int, emb embedder.Embedder) (*Index, error) {
	return BuildIndexWithProgress(ctx, docs, chunkSize, emb, nil)
}

// BuildIndexWithProgress is BuildIndex with an optional progress callback,
// called with (completed, total) after each passage is embedded.
func BuildIndexWithProgress(ctx context.Context, docs []Document, chunkSize int, emb embedder.Embedder, progressFn func(done, total int)) (*Index, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", chunkSize, ErrInvalidArgument)
	}

	var passages []Passage
	for _, doc := range docs {
		for _, text := range chunker.Split(doc.Text, chunkSize) {
			passages = append(passages, Passage{Source: doc.Name, Text: text})
		}
	}

	entries := make([]IndexEntry, 0, len(passages))
	for i, p := range passages {
		vec, err := emb.Embed(ctx, p.Text)
		if err != nil {
			return nil, fmt.Errorf("embed passage %d (%s): %w", i, p.Source, err)
		}
		entries = append(entries, IndexEntry{Passage: p, Vector: vec})
		if progressFn != nil {
			progressFn(i+1, len(passages))
		}
	}

	return New(entries, emb.Dimension(), emb.ModelInfo()), nil
}

// indexData is the gob wire form of an Index.
type indexData struct {
	Entries   []IndexEntry
	Dimension int
	ModelInfo string
}

// Save writes the index to w in gob format.
func (idx *Index) Save(w io.Writer) error {
	data := indexData{
		Entries:   idx.entries,
		Dimension: idx.dimension,
		ModelInfo: idx.modelInfo,
	}
	if err := gob.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return nil
}

// LoadIndexFrom reads a gob-encoded index from r.
func LoadIndexFrom(r io.Reader) (*Index, error) {
	var data indexData
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return New(data.Entries, data.Dimension, data.ModelInfo), nil
}
