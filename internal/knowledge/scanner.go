package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var categoryPattern = regexp.MustCompile(`(?m)^category:\s*(.+)\s*$`)

// ScanDir scans the knowledge directory and returns every .md and .txt file
// with its resolved category. Subdirectories are not descended into; the
// knowledge dir is a flat mirror of the remote KB.
func ScanDir(ctx context.Context, dir string) ([]ScannedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge dir %s: %w", dir, err)
	}

	var files []ScannedFile
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".md" && ext != ".txt" {
			continue
		}

		absPath := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", absPath, err)
		}

		files = append(files, ScannedFile{
			Source:   entry.Name(),
			AbsPath:  absPath,
			Category: resolveCategory(entry.Name(), string(content)),
		})
	}

	return files, nil
}

// resolveCategory picks the category for a file: a frontmatter "category:"
// field wins, then a "kb_<category>" file name, then "general".
func resolveCategory(filename, content string) string {
	if fm, _ := splitFrontmatter(content); fm != "" {
		if m := categoryPattern.FindStringSubmatch(fm); m != nil {
			if category := strings.ToLower(strings.TrimSpace(m[1])); category != "" {
				return category
			}
		}
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if strings.HasPrefix(name, "kb_") {
		if category := strings.ToLower(strings.TrimPrefix(name, "kb_")); category != "" {
			return category
		}
	}

	return "general"
}

// splitFrontmatter separates a leading "---" delimited frontmatter block
// from the document body. Returns ("", content) when there is none.
func splitFrontmatter(content string) (frontmatter, body string) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return "", content
	}

	rest := content[strings.Index(content, "\n")+1:]
	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return "", content
	}

	frontmatter = rest[:idx]
	body = rest[idx+len("\n---"):]
	if i := strings.Index(body, "\n"); i != -1 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return frontmatter, body
}
