// Command docrag-index builds a search index from a directory of documents:
// load, chunk, embed, save.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/quietfold/docrag/pkg/docrag"
	"github.com/quietfold/docrag/pkg/embedder"
	"github.com/quietfold/docrag/pkg/loader"
)

func main() {
	// Load .env file if it exists (for API key)
	_ = godotenv.Load()

	docsDir := flag.String("docs", "documents", "directory containing .txt/.md documents")
	out := flag.String("out", "index.gob", "output index file")
	chunkSize := flag.Int("chunk-size", 500, "target passage size in characters")
	model := flag.String("model", "text-embedding-3-small", "OpenAI embedding model")
	offline := flag.Bool("offline", false, "use the deterministic offline embedder (no API calls)")
	flag.Parse()

	if err := run(*docsDir, *out, *chunkSize, *model, *offline); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(docsDir, out string, chunkSize int, model string, offline bool) error {
	ctx := context.Background()

	fmt.Println("Step 1: Loading documents...")
	docs, err := loader.LoadDocuments(os.DirFS(docsDir), ".")
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}
	if len(docs) == 0 {
		fmt.Printf("  No documents found in %s; writing an empty index.\n", docsDir)
	} else {
		fmt.Printf("  Loaded %d document(s):\n", len(docs))
		for _, d := range docs {
			fmt.Printf("    - %s\n", d.Name)
		}
	}
	fmt.Println()

	fmt.Println("Step 2: Initializing embedder...")
	var emb embedder.Embedder
	if offline {
		emb = embedder.NewSimpleEmbedder(256)
	} else {
		emb, err = embedder.NewOpenAIEmbedder(os.Getenv("OPENAI_API_KEY"), model)
		if err != nil {
			return fmt.Errorf("initializing embedder: %w", err)
		}
	}
	fmt.Printf("  Embedder ready (model=%s, dim=%d)\n\n", emb.ModelInfo(), emb.Dimension())

	fmt.Println("Step 3: Chunking and embedding...")
	var bar *progressbar.ProgressBar
	index, err := docrag.BuildIndexWithProgress(ctx, docs, chunkSize, emb, func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Embedding passages"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	})
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	fmt.Printf("  Indexed %d passage(s)\n\n", index.Len())

	fmt.Println("Step 4: Saving index...")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer file.Close()

	if err := index.Save(file); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}

	fmt.Printf("  Saved to %s\n\nDone! The index is ready for querying.\n", out)
	return nil
}
