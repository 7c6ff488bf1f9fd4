package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Book is a row in the books table: one imported book on the shelf.
type Book struct {
	ID           string    // UUID assigned at import
	Title        string    // Cleaned title from the filename (or fallback)
	Author       string    // Cleaned author, empty when unknown
	Path         string    // Absolute path of the imported file
	Fingerprint  string    // BLAKE2b-256 hex digest of the file content
	SizeBytes    int64     // File size at import time
	Format       string    // "txt" or "pdf"
	ReadPosition int64     // Byte offset the reader last stopped at
	ImportedAt   time.Time // When the book was added to the shelf
	LastOpenedAt time.Time // Zero when the book was never opened
}

// BookRepository provides CRUD operations over the books table.
type BookRepository struct {
	conn *sql.DB
}

// NewBookRepository wraps an open connection. The repository does not own
// the connection and never closes it.
func NewBookRepository(conn *sql.DB) *BookRepository {
	return &BookRepository{conn: conn}
}

// Insert adds a book to the shelf. ImportedAt defaults to now when zero.
// Inserting a fingerprint that already exists fails with a constraint
// error; callers should check GetByFingerprint first.
func (r *BookRepository) Insert(ctx context.Context, book *Book) error {
	if book.ID == "" {
		return fmt.Errorf("book ID is required")
	}
	if book.Fingerprint == "" {
		return fmt.Errorf("book fingerprint is required")
	}
	importedAt := book.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}

	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO books (id, title, author, path, fingerprint, size_bytes, format, read_position, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		book.ID, book.Title, book.Author, book.Path, book.Fingerprint,
		book.SizeBytes, book.Format, book.ReadPosition, importedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book %q: %w", book.Title, err)
	}
	return nil
}

// GetByID fetches one book. Returns (nil, nil) when no book has that ID.
func (r *BookRepository) GetByID(ctx context.Context, id string) (*Book, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

// GetByFingerprint fetches the book with the given content fingerprint.
// Returns (nil, nil) when the content is not on the shelf — the importer's
// duplicate check.
func (r *BookRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*Book, error) {
	return r.getOne(ctx, `WHERE fingerprint = ?`, fingerprint)
}

func (r *BookRepository) getOne(ctx context.Context, where string, arg interface{}) (*Book, error) {
	row := r.conn.QueryRowContext(ctx, `
		SELECT id, title, author, path, fingerprint, size_bytes, format, read_position, imported_at, last_opened_at
		FROM books `+where, arg)

	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query book: %w", err)
	}
	return book, nil
}

// List returns all books, most recently imported first.
func (r *BookRepository) List(ctx context.Context) ([]Book, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, title, author, path, fingerprint, size_bytes, format, read_position, imported_at, last_opened_at
		FROM books ORDER BY imported_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating books: %w", err)
	}
	return books, nil
}

// UpdateReadPosition records where the reader stopped and stamps
// last_opened_at.
func (r *BookRepository) UpdateReadPosition(ctx context.Context, id string, position int64) error {
	res, err := r.conn.ExecContext(ctx, `
		UPDATE books SET read_position = ?, last_opened_at = ? WHERE id = ?`,
		position, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update read position: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no book with id %q", id)
	}
	return nil
}

// Delete removes a book from the shelf. Deleting an unknown ID is an error
// so callers can surface typos.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no book with id %q", id)
	}
	return nil
}

// Count returns the number of books on the shelf.
func (r *BookRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return n, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(s scanner) (*Book, error) {
	var book Book
	var lastOpened sql.NullTime
	err := s.Scan(
		&book.ID, &book.Title, &book.Author, &book.Path, &book.Fingerprint,
		&book.SizeBytes, &book.Format, &book.ReadPosition, &book.ImportedAt, &lastOpened,
	)
	if err != nil {
		return nil, err
	}
	if lastOpened.Valid {
		book.LastOpenedAt = lastOpened.Time
	}
	return &book, nil
}
