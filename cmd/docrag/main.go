// Command docrag answers a query against a previously built index: load
// index, embed query, rank passages, print the best matches.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/quietfold/docrag/pkg/docrag"
	"github.com/quietfold/docrag/pkg/embedder"
)

func main() {
	// Load .env file if it exists (for API key)
	_ = godotenv.Load()

	indexPath := flag.String("index", "index.gob", "path to the index file")
	top := flag.Int("top", 5, "number of results to return")
	full := flag.Bool("full", false, "show full passage text instead of a preview")
	verbose := flag.Bool("verbose", false, "enable verbose output for debugging")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: docrag [options] <query>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	query := strings.Join(args, " ")

	if err := run(*indexPath, query, *top, *full, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(indexPath, query string, top int, full, verbose bool) error {
	file, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}
	defer file.Close()

	index, err := docrag.LoadIndexFrom(file)
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	if verbose {
		fmt.Printf("[DEBUG] Loaded %d passages (dim=%d, model=%s)\n",
			index.Len(), index.Dimension(), index.ModelInfo())
	}

	var emb embedder.Embedder
	if index.ModelInfo() == "simple-embedder-v1" {
		emb = embedder.NewSimpleEmbedder(index.Dimension())
	} else {
		model := strings.TrimPrefix(index.ModelInfo(), "openai-")
		emb, err = embedder.NewOpenAIEmbedder(os.Getenv("OPENAI_API_KEY"), model)
		if err != nil {
			return fmt.Errorf("initializing embedder: %w", err)
		}
	}
	if emb.Dimension() != index.Dimension() && index.Len() > 0 {
		return fmt.Errorf("embedder dimension %d does not match index dimension %d",
			emb.Dimension(), index.Dimension())
	}

	if verbose {
		fmt.Printf("[DEBUG] Embedding query: %q\n", query)
	}

	results, err := docrag.Retrieve(context.Background(), query, index, top, emb)
	if err != nil {
		return fmt.Errorf("retrieving: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results found")
		return nil
	}

	fmt.Printf("Found %d result(s):\n\n", len(results))
	for i, result := range results {
		fmt.Printf("Score: %.4f | %s\n", result.Score, result.Passage.Source)
		if full {
			fmt.Printf("%s\n", result.Passage.Text)
		} else {
			fmt.Printf("%s\n", preview(result.Passage.Text, 120))
		}
		if i < len(results)-1 {
			fmt.Println()
		}
	}
	return nil
}

// preview truncates text to at most n characters on a word boundary.
func preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := text[:n]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
