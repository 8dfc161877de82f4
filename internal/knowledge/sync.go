package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/storage"
)

const syncTimeout = 20 * time.Second

// Syncer mirrors a remote knowledge base into the local knowledge dir.
// The remote endpoint returns a JSON object mapping category names to
// markdown content; each category is written to kb_<category>.md. When the
// remote is unreachable the local mirror keeps serving, but its documents
// are flagged stale so operators can see the drift.
type Syncer struct {
	url    string
	dir    string
	docs   storage.DocumentStore
	client *http.Client
}

// NewSyncer creates a syncer for the given remote URL and knowledge dir.
func NewSyncer(url, dir string, docs storage.DocumentStore) *Syncer {
	return &Syncer{
		url:    url,
		dir:    dir,
		docs:   docs,
		client: &http.Client{Timeout: syncTimeout},
	}
}

// Sync fetches the remote knowledge base and rewrites changed mirror files.
// Returns the list of categories whose files changed on disk.
func (s *Syncer) Sync(ctx context.Context) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	remote, err := s.fetch(ctx)
	if err != nil {
		s.markAllStale(ctx)
		return nil, err
	}

	var changed []string
	for category, content := range remote {
		source := fmt.Sprintf("kb_%s.md", category)
		path := filepath.Join(s.dir, source)

		newHash := fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
		if existing, err := os.ReadFile(path); err == nil {
			if fmt.Sprintf("%x", sha256.Sum256(existing)) == newHash {
				continue
			}
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return changed, fmt.Errorf("failed to write %s: %w", path, err)
		}
		changed = append(changed, category)
		logger.InfoContext(ctx, "synced knowledge file", "source", source, "hash", newHash)
	}

	return changed, nil
}

// fetch downloads the remote knowledge base.
func (s *Syncer) fetch(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch knowledge base: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("knowledge sync bad status %d: %s", resp.StatusCode, string(raw))
	}

	var remote map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge base: %w", err)
	}

	return remote, nil
}

// markAllStale flags every tracked document as stale after a failed sync.
func (s *Syncer) markAllStale(ctx context.Context) {
	logger := contextutil.LoggerFromContext(ctx)

	docs, err := s.docs.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to list documents for stale marking", "error", err)
		return
	}
	for _, doc := range docs {
		if err := s.docs.SetStale(ctx, doc.Source, true); err != nil {
			logger.WarnContext(ctx, "failed to mark document stale", "source", doc.Source, "error", err)
		}
	}
}
