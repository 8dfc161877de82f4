package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "kb_location.md", "# Office\nWe are in Megamall.")
	writeFile(t, dir, "notes.txt", "Plain text notes about visa requirements.")
	writeFile(t, dir, "custom.md", "---\ncategory: Requirements\n---\nDocument list.")
	writeFile(t, dir, "ignore.json", "{}")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	got := make(map[string]string, len(files))
	for _, f := range files {
		got[f.Source] = f.Category
	}

	want := map[string]string{
		"kb_location.md": "location",
		"notes.txt":      "general",
		"custom.md":      "requirements",
	}
	if len(got) != len(want) {
		t.Fatalf("ScanDir() returned %d files, want %d: %v", len(got), len(want), got)
	}
	for source, category := range want {
		if got[source] != category {
			t.Errorf("ScanDir() category for %s = %q, want %q", source, got[source], category)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{
			name:     "frontmatter wins over filename",
			filename: "kb_location.md",
			content:  "---\ncategory: hours\n---\nBody",
			want:     "hours",
		},
		{
			name:     "filename prefix",
			filename: "kb_price.md",
			content:  "Body",
			want:     "price",
		},
		{
			name:     "frontmatter is case-insensitive",
			filename: "doc.md",
			content:  "---\ncategory: Contact\n---\nBody",
			want:     "contact",
		},
		{
			name:     "no hints",
			filename: "readme.md",
			content:  "Body",
			want:     "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCategory(tt.filename, tt.content); got != tt.want {
				t.Errorf("resolveCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitFrontmatter(t *testing.T) {
	fm, body := splitFrontmatter("---\ncategory: hours\n---\nThe body.")
	if fm != "category: hours" {
		t.Errorf("frontmatter = %q", fm)
	}
	if body != "The body." {
		t.Errorf("body = %q", body)
	}

	fm, body = splitFrontmatter("No frontmatter here.")
	if fm != "" || body != "No frontmatter here." {
		t.Errorf("splitFrontmatter() without block = %q, %q", fm, body)
	}
}
