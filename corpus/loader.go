package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/zakaut/core"
)

// readConcurrency bounds parallel file reads.
const readConcurrency = 8

// LoadDirectory reads every .txt and .md file in dir as a criteria document,
// in file name order. The document ID is the file name without its extension.
// Subdirectories are not descended into. A directory with no loadable files
// is an error, as is a blank file.
func LoadDirectory(ctx context.Context, dir string) ([]core.CriteriaDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by name.
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no .txt or .md files in %s", ErrNoDocumentFiles, dir)
	}

	return LoadFiles(ctx, paths)
}

// LoadFiles reads an explicit list of files as criteria documents, in input
// order regardless of read completion order. The document ID is the file
// name without its extension; IDs must be unique across the list.
func LoadFiles(ctx context.Context, paths []string) ([]core.CriteriaDocument, error) {
	if len(paths) == 0 {
		return nil, ErrNoDocumentFiles
	}

	docs := make([]core.CriteriaDocument, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// Hebrew criteria files exported from Windows tools often carry
			// a UTF-8 BOM.
			content := strings.TrimPrefix(string(data), "\uFEFF")

			doc := core.CriteriaDocument{
				ID:      docID(path),
				Content: content,
			}
			if err := core.ValidateDocument(doc); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if seen[doc.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDocumentID, doc.ID)
		}
		seen[doc.ID] = true
	}

	return docs, nil
}

// docID derives the document ID from a file path: base name without extension.
func docID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
