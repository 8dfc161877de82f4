package storage

import "time"

// DocumentRecord represents one knowledge-base source file in the database.
type DocumentRecord struct {
	ID        string // UUID
	Source    string // File name relative to the knowledge dir, unique
	Category  string // KB category ("location", "requirements", ...)
	Title     string // First heading, or the file name without extension
	Hash      string // SHA256 hex string of file content
	Stale     bool   // Set when a remote sync could not refresh this file
	UpdatedAt time.Time
}

// ChunkRecord represents an indexed chunk of a knowledge-base document.
type ChunkRecord struct {
	ID         string // UUID (same as the vector store point ID)
	DocumentID string // Foreign key to documents.id
	ChunkIndex int    // Index within the document, starts at 0
	Category   string // Copied from the document for filtered retrieval
	Text       string // Chunk text content
}
