package knowledge

import (
	"context"
	"fmt"
	"os"
	"strings"

	"state101-assistant/internal/faq"
)

// Overrides builds the FAQ answer override map from the knowledge dir.
// A file whose category maps to a canned-answer intent replaces that
// intent's built-in answer with the file body. Files with unmapped
// categories only feed retrieval, not the canned answers.
func Overrides(ctx context.Context, dir string) (map[string]string, error) {
	files, err := ScanDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]string)
	for _, file := range files {
		intent := faq.IntentForCategory(file.Category)
		if intent == "" {
			continue
		}

		content, err := os.ReadFile(file.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.AbsPath, err)
		}

		_, body := splitFrontmatter(string(content))
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}

		overrides[intent] = body
	}

	return overrides, nil
}
