package storage

import (
	"context"
	"database/sql"
	"testing"
)

func newChunkTestRepos(t *testing.T) (*sql.DB, *DocumentRepo, *ChunkRepo) {
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

	return db, NewDocumentRepo(db), NewChunkRepo(db)
}

func insertTestDocument(t *testing.T, repo *DocumentRepo, source, category string) *DocumentRecord {
	t.Helper()

	doc := &DocumentRecord{Source: source, Category: category, Hash: "h"}
	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("Upsert(%s) error = %v", source, err)
	}
	return doc
}

func TestChunkRepo_InsertAndGet(t *testing.T) {
	_, docRepo, repo := newChunkTestRepos(t)
	doc := insertTestDocument(t, docRepo, "kb_location.md", "location")

	chunk := &ChunkRecord{
		ID:         "chunk-1",
		DocumentID: doc.ID,
		ChunkIndex: 0,
		Category:   "location",
		Text:       "The office is in Megamall.",
	}
	if err := repo.Insert(context.Background(), chunk); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), "chunk-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Text != chunk.Text || got.Category != "location" {
		t.Errorf("GetByID() = %+v, want inserted chunk", got)
	}
}

func TestChunkRepo_GetByID_NotFound(t *testing.T) {
	_, _, repo := newChunkTestRepos(t)

	_, err := repo.GetByID(context.Background(), "missing")
	if err != ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestChunkRepo_ListIDsByDocument_OrderedByIndex(t *testing.T) {
	_, docRepo, repo := newChunkTestRepos(t)
	doc := insertTestDocument(t, docRepo, "kb_requirements.md", "requirements")

	// Insert chunks in non-sequential order
	chunks := []*ChunkRecord{
		{ID: "chunk-3", DocumentID: doc.ID, ChunkIndex: 2, Category: "requirements", Text: "Text 3"},
		{ID: "chunk-1", DocumentID: doc.ID, ChunkIndex: 0, Category: "requirements", Text: "Text 1"},
		{ID: "chunk-2", DocumentID: doc.ID, ChunkIndex: 1, Category: "requirements", Text: "Text 2"},
	}
	for _, chunk := range chunks {
		if err := repo.Insert(context.Background(), chunk); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	ids, err := repo.ListIDsByDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("ListIDsByDocument() error = %v", err)
	}

	want := []string{"chunk-1", "chunk-2", "chunk-3"}
	if len(ids) != len(want) {
		t.Fatalf("ListIDsByDocument() returned %d IDs, want %d", len(ids), len(want))
	}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("ListIDsByDocument() ID[%d] = %v, want %v", i, id, want[i])
		}
	}
}

func TestChunkRepo_DeleteByDocument(t *testing.T) {
	_, docRepo, repo := newChunkTestRepos(t)
	doc := insertTestDocument(t, docRepo, "kb_price.md", "price")
	other := insertTestDocument(t, docRepo, "kb_hours.md", "hours")

	for i, docID := range []string{doc.ID, doc.ID, other.ID} {
		chunk := &ChunkRecord{
			ID:         "chunk-" + string(rune('a'+i)),
			DocumentID: docID,
			ChunkIndex: i,
			Category:   "price",
			Text:       "Text",
		}
		if err := repo.Insert(context.Background(), chunk); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := repo.DeleteByDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("DeleteByDocument() error = %v", err)
	}

	ids, err := repo.ListIDsByDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("ListIDsByDocument() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("DeleteByDocument() left %d chunks", len(ids))
	}

	// Other document's chunks survive
	ids, err = repo.ListIDsByDocument(context.Background(), other.ID)
	if err != nil {
		t.Fatalf("ListIDsByDocument() error = %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("DeleteByDocument() should not touch other documents, got %d chunks", len(ids))
	}
}

func TestChunkRepo_List(t *testing.T) {
	_, docRepo, repo := newChunkTestRepos(t)
	doc := insertTestDocument(t, docRepo, "kb_contact.md", "contact")

	if chunks, err := repo.List(context.Background()); err != nil || len(chunks) != 0 {
		t.Fatalf("List() on empty table = %v, %v; want empty, nil", chunks, err)
	}

	for i := 0; i < 3; i++ {
		chunk := &ChunkRecord{
			ID:         "chunk-" + string(rune('1'+i)),
			DocumentID: doc.ID,
			ChunkIndex: i,
			Category:   "contact",
			Text:       "Text",
		}
		if err := repo.Insert(context.Background(), chunk); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	chunks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("List() returned %d chunks, want 3", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.ChunkIndex != i {
			t.Errorf("List()[%d].ChunkIndex = %d, want %d", i, chunk.ChunkIndex, i)
		}
	}
}
