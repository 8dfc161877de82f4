package knowledge

// ScannedFile represents a knowledge-base file found during a directory scan.
type ScannedFile struct {
	Source   string // File name relative to the knowledge dir (e.g., "kb_location.md")
	AbsPath  string // Absolute file path
	Category string // From frontmatter, or the file name, or "general"
}

// Chunk is a retrieval-sized piece of a knowledge-base document.
type Chunk struct {
	Index int
	Text  string
}
