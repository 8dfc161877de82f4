package knowledge

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkFile_MarkdownSections(t *testing.T) {
	content := []byte(`# Visa Requirements

You need a valid passport with at least six months validity remaining.

## Documents

Bring your passport, two photos, and proof of accommodation for the stay.
`)

	chunker := NewChunker()
	title, chunks, err := chunker.ChunkFile(content, "kb_requirements.md")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}

	if title != "Visa Requirements" {
		t.Errorf("title = %q, want %q", title, "Visa Requirements")
	}
	if len(chunks) != 2 {
		t.Fatalf("ChunkFile() returned %d chunks, want 2", len(chunks))
	}
	if !strings.Contains(chunks[0].Text, "valid passport") {
		t.Errorf("chunk 0 missing section text: %q", chunks[0].Text)
	}
	if !strings.Contains(chunks[1].Text, "proof of accommodation") {
		t.Errorf("chunk 1 missing section text: %q", chunks[1].Text)
	}
	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d has index %d", i, chunk.Index)
		}
	}
}

func TestChunkFile_DropsTinyChunks(t *testing.T) {
	content := []byte("# T\n\nShort.\n\n## Long Section\n\n" + strings.Repeat("Useful facts about appointment scheduling. ", 3))

	chunker := NewChunker()
	_, chunks, err := chunker.ChunkFile(content, "kb_appointment.md")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}

	for _, chunk := range chunks {
		if utf8.RuneCountInString(chunk.Text) < minChunkRunes {
			t.Errorf("chunk below minimum size survived: %q", chunk.Text)
		}
	}
}

func TestChunkFile_PlainTextWindows(t *testing.T) {
	sentence := "The consulate processes tourist visa applications every weekday morning. "
	content := []byte(strings.Repeat(sentence, 40))

	chunker := NewChunker()
	title, chunks, err := chunker.ChunkFile(content, "schedule_notes.txt")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}

	if title != "Schedule Notes" {
		t.Errorf("title = %q, want %q", title, "Schedule Notes")
	}
	if len(chunks) < 2 {
		t.Fatalf("expected long text to split into multiple chunks, got %d", len(chunks))
	}
	for _, chunk := range chunks {
		if utf8.RuneCountInString(chunk.Text) > maxChunkRunes {
			t.Errorf("chunk exceeds max size: %d runes", utf8.RuneCountInString(chunk.Text))
		}
	}
}

func TestChunkFile_DeduplicatesRepeatedSections(t *testing.T) {
	section := "## Fees\n\nThe standard processing fee is 4500 pesos payable on application day.\n\n"
	content := []byte("# Pricing\n\n" + section + section)

	chunker := NewChunker()
	_, chunks, err := chunker.ChunkFile(content, "kb_price.md")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}

	seen := make(map[string]int)
	for _, chunk := range chunks {
		seen[runePrefix(chunk.Text, dedupePrefix)]++
	}
	for prefix, count := range seen {
		if count > 1 {
			t.Errorf("duplicate chunk prefix kept %d times: %q", count, prefix)
		}
	}
}

func TestChunkFile_StripsFrontmatter(t *testing.T) {
	content := []byte("---\ncategory: hours\n---\n# Hours\n\nOpen Monday to Friday from nine in the morning until six in the evening.")

	chunker := NewChunker()
	_, chunks, err := chunker.ChunkFile(content, "kb_hours.md")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}

	for _, chunk := range chunks {
		if strings.Contains(chunk.Text, "category:") {
			t.Errorf("frontmatter leaked into chunk: %q", chunk.Text)
		}
	}
}

func TestChunkFile_Empty(t *testing.T) {
	chunker := NewChunker()
	title, chunks, err := chunker.ChunkFile(nil, "kb_status.md")
	if err != nil {
		t.Fatalf("ChunkFile() error = %v", err)
	}
	if title != "Status" {
		t.Errorf("title = %q, want %q", title, "Status")
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks for empty file, got %d", len(chunks))
	}
}
