package storage

import (
	"context"
	"testing"
)

func newTestDB(t *testing.T) *DocumentRepo {
	t.Helper()

	dbPath := t.TempDir() + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewDocumentRepo(db)
}

func TestDocumentRepo_GetBySource_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetBySource(context.Background(), "kb_missing.md")
	if err != ErrNotFound {
		t.Errorf("GetBySource() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepo_Upsert(t *testing.T) {
	repo := newTestDB(t)

	doc := &DocumentRecord{
		Source:   "kb_location.md",
		Category: "location",
		Title:    "Office Location",
		Hash:     "abc123",
	}
	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if doc.ID == "" {
		t.Fatal("Upsert() should assign an ID to new documents")
	}

	got, err := repo.GetBySource(context.Background(), "kb_location.md")
	if err != nil {
		t.Fatalf("GetBySource() error = %v", err)
	}
	if got.Category != "location" || got.Title != "Office Location" || got.Hash != "abc123" {
		t.Errorf("GetBySource() = %+v, want inserted fields", got)
	}

	// Second upsert with a new hash keeps the ID
	originalID := doc.ID
	doc.Hash = "def456"
	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}
	if doc.ID != originalID {
		t.Errorf("Upsert() changed ID from %s to %s", originalID, doc.ID)
	}

	got, err = repo.GetBySource(context.Background(), "kb_location.md")
	if err != nil {
		t.Fatalf("GetBySource() error = %v", err)
	}
	if got.Hash != "def456" {
		t.Errorf("Upsert() hash = %s, want def456", got.Hash)
	}
}

func TestDocumentRepo_List(t *testing.T) {
	repo := newTestDB(t)

	sources := []string{"kb_requirements.md", "kb_location.md", "kb_price.md"}
	for _, source := range sources {
		doc := &DocumentRecord{Source: source, Category: "general", Hash: "h"}
		if err := repo.Upsert(context.Background(), doc); err != nil {
			t.Fatalf("Upsert(%s) error = %v", source, err)
		}
	}

	docs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"kb_location.md", "kb_price.md", "kb_requirements.md"}
	if len(docs) != len(want) {
		t.Fatalf("List() returned %d documents, want %d", len(docs), len(want))
	}
	for i, doc := range docs {
		if doc.Source != want[i] {
			t.Errorf("List()[%d].Source = %s, want %s", i, doc.Source, want[i])
		}
	}
}

func TestDocumentRepo_SetStale(t *testing.T) {
	repo := newTestDB(t)

	doc := &DocumentRecord{Source: "kb_hours.md", Category: "hours", Hash: "h"}
	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := repo.SetStale(context.Background(), "kb_hours.md", true); err != nil {
		t.Fatalf("SetStale() error = %v", err)
	}

	got, err := repo.GetBySource(context.Background(), "kb_hours.md")
	if err != nil {
		t.Fatalf("GetBySource() error = %v", err)
	}
	if !got.Stale {
		t.Error("SetStale(true) did not mark the document stale")
	}

	if err := repo.SetStale(context.Background(), "kb_hours.md", false); err != nil {
		t.Fatalf("SetStale() error = %v", err)
	}
	got, err = repo.GetBySource(context.Background(), "kb_hours.md")
	if err != nil {
		t.Fatalf("GetBySource() error = %v", err)
	}
	if got.Stale {
		t.Error("SetStale(false) did not clear the stale flag")
	}
}

func TestDocumentRepo_SetStale_NotFound(t *testing.T) {
	repo := newTestDB(t)

	err := repo.SetStale(context.Background(), "kb_missing.md", true)
	if err != ErrNotFound {
		t.Errorf("SetStale() error = %v, want ErrNotFound", err)
	}
}
