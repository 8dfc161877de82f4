package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks state101-assistant/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DocumentStore defines the interface for document storage operations.
type DocumentStore interface {
	// GetBySource gets a document by its source file name.
	// Returns nil and ErrNotFound if not found.
	GetBySource(ctx context.Context, source string) (*DocumentRecord, error)
	// Upsert inserts a new document or updates an existing one.
	Upsert(ctx context.Context, doc *DocumentRecord) error
	// List returns all documents ordered by source.
	List(ctx context.Context) ([]DocumentRecord, error)
	// SetStale flags or clears the stale marker on a document.
	SetStale(ctx context.Context, source string, stale bool) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// GetBySource gets a document by its source file name.
// Returns nil and ErrNotFound if not found.
func (r *DocumentRepo) GetBySource(ctx context.Context, source string) (*DocumentRecord, error) {
	var doc DocumentRecord
	var stale int
	var updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, source, category, title, hash, stale, updated_at FROM documents WHERE source = ?",
		source,
	).Scan(&doc.ID, &doc.Source, &doc.Category, &doc.Title, &doc.Hash, &stale, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	doc.Stale = stale != 0
	doc.UpdatedAt, err = parseTimestamp(updatedAtStr)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Upsert inserts a new document or updates an existing one.
// New documents get a fresh UUID; existing documents keep theirs.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *DocumentRecord) error {
	existing, err := r.GetBySource(ctx, doc.Source)
	if err != nil && err != ErrNotFound {
		return fmt.Errorf("failed to check existing document: %w", err)
	}

	if existing == nil && doc.ID == "" {
		doc.ID = uuid.New().String()
	} else if existing != nil {
		doc.ID = existing.ID
	}

	staleVal := 0
	if doc.Stale {
		staleVal = 1
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (id, source, category, title, hash, stale, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (source) DO UPDATE SET
		 category = excluded.category, title = excluded.title, hash = excluded.hash,
		 stale = excluded.stale, updated_at = CURRENT_TIMESTAMP`,
		doc.ID, doc.Source, doc.Category, doc.Title, doc.Hash, staleVal,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// List returns all documents ordered by source.
func (r *DocumentRepo) List(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, source, category, title, hash, stale, updated_at FROM documents ORDER BY source",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []DocumentRecord
	for rows.Next() {
		var doc DocumentRecord
		var stale int
		var updatedAtStr string
		if err := rows.Scan(&doc.ID, &doc.Source, &doc.Category, &doc.Title, &doc.Hash, &stale, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Stale = stale != 0
		doc.UpdatedAt, err = parseTimestamp(updatedAtStr)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

// SetStale flags or clears the stale marker on a document.
func (r *DocumentRepo) SetStale(ctx context.Context, source string, stale bool) error {
	staleVal := 0
	if stale {
		staleVal = 1
	}
	res, err := r.db.ExecContext(ctx, "UPDATE documents SET stale = ? WHERE source = ?", staleVal, source)
	if err != nil {
		return fmt.Errorf("failed to update stale flag: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTimestamp parses a SQLite DATETIME column value.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// SQLite may emit RFC3339 depending on how the value was written
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}
