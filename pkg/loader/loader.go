// Package loader reads corpus documents from a filesystem.
package loader

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quietfold/docrag/pkg/docrag"
)

// LoadDocuments reads all .txt and .md files under root in fsys and returns
// them as documents named by their path relative to root. Output is sorted
// by path so document order, and therefore index insertion order, is
// deterministic across runs.
func LoadDocuments(fsys fs.FS, root string) ([]docrag.Document, error) {
	var docs []docrag.Document

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".txt") && !strings.HasSuffix(path, ".md") {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}

		docs = append(docs, docrag.Document{Name: relPath, Text: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir is lexical already; keep the guarantee explicit.
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	return docs, nil
}
