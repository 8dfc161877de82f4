package knowledge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"state101-assistant/internal/storage"
)

func newSyncTestRepo(t *testing.T) *storage.DocumentRepo {
	t.Helper()

	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}
	return storage.NewDocumentRepo(db)
}

func TestSyncer_Sync_WritesMirrorFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location": "# Office\nWe moved to the 4th floor.", "hours": "# Hours\nOpen weekdays."}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	syncer := NewSyncer(server.URL, dir, newSyncTestRepo(t))

	changed, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if len(changed) != 2 {
		t.Errorf("Sync() changed = %v, want 2 categories", changed)
	}

	content, err := os.ReadFile(filepath.Join(dir, "kb_location.md"))
	if err != nil {
		t.Fatalf("mirror file not written: %v", err)
	}
	if string(content) != "# Office\nWe moved to the 4th floor." {
		t.Errorf("mirror content = %q", string(content))
	}
}

func TestSyncer_Sync_SkipsUnchangedFiles(t *testing.T) {
	const body = `{"location": "# Office\nSame as before."}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	dir := t.TempDir()
	syncer := NewSyncer(server.URL, dir, newSyncTestRepo(t))

	if _, err := syncer.Sync(context.Background()); err != nil {
		t.Fatalf("first Sync() error = %v", err)
	}

	changed, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("second Sync() error = %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("second Sync() changed = %v, want none", changed)
	}
}

func TestSyncer_Sync_MarksDocumentsStaleOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := newSyncTestRepo(t)
	doc := &storage.DocumentRecord{Source: "kb_location.md", Category: "location", Hash: "h"}
	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	syncer := NewSyncer(server.URL, t.TempDir(), repo)

	if _, err := syncer.Sync(context.Background()); err == nil {
		t.Fatal("Sync() expected error on bad status, got nil")
	}

	got, err := repo.GetBySource(context.Background(), "kb_location.md")
	if err != nil {
		t.Fatalf("GetBySource() error = %v", err)
	}
	if !got.Stale {
		t.Error("Sync() failure should mark documents stale")
	}
}
