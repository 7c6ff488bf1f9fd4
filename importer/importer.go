// Package importer turns dropped book files into shelf entries: it
// fingerprints the content, extracts title and author from the filename,
// stores the book and renders its placeholder cover.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shelf_backend/bookname"
	"shelf_backend/core"
	"shelf_backend/covers"
	"shelf_backend/db"
	"shelf_backend/logging"
)

// supportedFormats maps accepted file extensions to the stored format tag.
var supportedFormats = map[string]string{
	".txt": "txt",
	".pdf": "pdf",
}

// Importer imports book files into the shelf database.
type Importer struct {
	repo      *db.BookRepository
	coversDir string
	logger    *logging.Logger
}

// New creates an Importer. coversDir is created on demand by the cover
// writer.
func New(repo *db.BookRepository, coversDir string, logger *logging.Logger) *Importer {
	return &Importer{repo: repo, coversDir: coversDir, logger: logger}
}

// Result describes the outcome of importing a single file.
type Result struct {
	// Book is the inserted shelf entry; nil when Skipped.
	Book *db.Book
	// Skipped is true when the file was deliberately not imported.
	Skipped bool
	// Reason explains a skip ("unsupported format", "duplicate").
	Reason string
}

// ImportFile imports one file. Unsupported extensions and content already
// on the shelf are skips, not errors; errors mean the file could not be
// read or the insert failed.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	format, ok := supportedFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return &Result{Skipped: true, Reason: "unsupported format"}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("importer: failed to stat %q: %w", path, err)
	}

	fingerprint, err := core.FingerprintFile(path)
	if err != nil {
		return nil, err
	}

	existing, err := im.repo.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		im.logger.Debug("skipping duplicate content",
			zap.String("path", path),
			zap.String("existing_title", existing.Title),
		)
		return &Result{Skipped: true, Reason: "duplicate"}, nil
	}

	meta := bookname.Extract(path)
	title := meta.Title
	if title == "" && format == "pdf" {
		title = pdfTitleFallback(path)
	}
	if title == "" {
		// Last resort: the raw basename, extension dropped.
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	book := &db.Book{
		ID:          uuid.New().String(),
		Title:       title,
		Author:      meta.Author,
		Path:        absPath,
		Fingerprint: fingerprint,
		SizeBytes:   info.Size(),
		Format:      format,
	}
	if err := im.repo.Insert(ctx, book); err != nil {
		return nil, err
	}

	// Cover failures are logged, not fatal: the shelf entry already exists
	// and the frontend falls back to a blank tile.
	coverPath := filepath.Join(im.coversDir, book.ID+".png")
	if err := covers.WritePNG(coverPath, covers.Generate(book.Title, book.Author, fingerprint)); err != nil {
		im.logger.Warn("cover generation failed",
			zap.String("book_id", book.ID),
			zap.Error(err),
		)
	}

	im.logger.Info("book imported",
		zap.String("book_id", book.ID),
		zap.String("title", book.Title),
		zap.String("author", book.Author),
		zap.String("format", book.Format),
		zap.Int64("size_bytes", book.SizeBytes),
	)
	return &Result{Book: book}, nil
}

// ScanDirectory imports every supported file directly under dir. Files
// that fail to import are logged and counted; the scan continues so one
// corrupt file cannot block the rest of a drop.
func (im *Importer) ScanDirectory(ctx context.Context, dir string) (imported, skipped, failed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("importer: failed to read %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ctx.Err() != nil {
			return imported, skipped, failed, ctx.Err()
		}

		res, err := im.ImportFile(ctx, filepath.Join(dir, entry.Name()))
		switch {
		case err != nil:
			failed++
			im.logger.Error("import failed",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
		case res.Skipped:
			skipped++
		default:
			imported++
		}
	}
	return imported, skipped, failed, nil
}
