package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// newTestDatabase opens a throwaway database in a temp dir with the real
// migrations applied.
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	database, err := NewDatabase(DatabaseConfig{
		Path:           filepath.Join(t.TempDir(), "shelf.db"),
		MigrationsPath: "file://migrations",
	})
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testBook(id, fingerprint string) *Book {
	return &Book{
		ID:          id,
		Title:       "斗破苍穹",
		Author:      "天蚕土豆",
		Path:        "/library/斗破苍穹.txt",
		Fingerprint: fingerprint,
		SizeBytes:   8 << 20,
		Format:      "txt",
	}
}

func TestBookRepositoryInsertAndGet(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	book := testBook("id-1", "fp-1")
	if err := repo.Insert(ctx, book); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil for existing book")
	}
	if got.Title != book.Title || got.Author != book.Author || got.Fingerprint != book.Fingerprint {
		t.Errorf("got %+v, want %+v", got, book)
	}
	if got.ImportedAt.IsZero() {
		t.Error("ImportedAt was not defaulted")
	}
	if !got.LastOpenedAt.IsZero() {
		t.Errorf("LastOpenedAt = %v, want zero for never-opened book", got.LastOpenedAt)
	}
}

func TestBookRepositoryGetByFingerprint(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	if err := repo.Insert(ctx, testBook("id-1", "fp-1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByFingerprint(ctx, "fp-1")
	if err != nil {
		t.Fatalf("GetByFingerprint: %v", err)
	}
	if got == nil || got.ID != "id-1" {
		t.Errorf("GetByFingerprint = %+v, want book id-1", got)
	}

	missing, err := repo.GetByFingerprint(ctx, "fp-unknown")
	if err != nil {
		t.Fatalf("GetByFingerprint(miss): %v", err)
	}
	if missing != nil {
		t.Errorf("unknown fingerprint returned %+v, want nil", missing)
	}
}

func TestBookRepositoryDuplicateFingerprintRejected(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	if err := repo.Insert(ctx, testBook("id-1", "fp-same")); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if err := repo.Insert(ctx, testBook("id-2", "fp-same")); err == nil {
		t.Error("duplicate fingerprint insert succeeded, want constraint error")
	}
}

func TestBookRepositoryListOrder(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	older := testBook("id-old", "fp-old")
	older.ImportedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testBook("id-new", "fp-new")
	newer.ImportedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.Insert(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := repo.Insert(ctx, newer); err != nil {
		t.Fatal(err)
	}

	books, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("List returned %d books, want 2", len(books))
	}
	if books[0].ID != "id-new" || books[1].ID != "id-old" {
		t.Errorf("List order = [%s, %s], want newest first", books[0].ID, books[1].ID)
	}
}

func TestBookRepositoryUpdateReadPosition(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	if err := repo.Insert(ctx, testBook("id-1", "fp-1")); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateReadPosition(ctx, "id-1", 4096); err != nil {
		t.Fatalf("UpdateReadPosition: %v", err)
	}

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ReadPosition != 4096 {
		t.Errorf("ReadPosition = %d, want 4096", got.ReadPosition)
	}
	if got.LastOpenedAt.IsZero() {
		t.Error("LastOpenedAt was not stamped")
	}

	if err := repo.UpdateReadPosition(ctx, "id-missing", 1); err == nil {
		t.Error("updating unknown book succeeded, want error")
	}
}

func TestBookRepositoryDelete(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	if err := repo.Insert(ctx, testBook("id-1", "fp-1")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("book still present after delete: %+v", got)
	}

	if err := repo.Delete(ctx, "id-1"); err == nil {
		t.Error("deleting unknown book succeeded, want error")
	}
}

func TestBookRepositoryCount(t *testing.T) {
	repo := NewBookRepository(newTestDatabase(t).DB())
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("empty shelf Count = %d, want 0", n)
	}

	if err := repo.Insert(ctx, testBook("id-1", "fp-1")); err != nil {
		t.Fatal(err)
	}
	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
