package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"

	"cat-poster/internal/logger"
)

const (
	// DefaultLimit is how many of the most recent captions are persisted.
	DefaultLimit = 5000
	// DefaultPath is where the history lives relative to the working directory.
	DefaultPath = ".state/used_captions.json"

	fileMode = 0o644
)

// Repository loads and persists a Store.
type Repository interface {
	Load() *Store
	Save(store *Store) error
}

// FileRepository keeps the history as a pretty-printed JSON array of strings.
type FileRepository struct {
	path      string
	limit     int
	mu        sync.Mutex
	writeFile func(filename string, data []byte, perm os.FileMode, opts ...renameio.Option) error
}

// NewFileRepository returns a repository for path. A non-positive limit uses DefaultLimit.
func NewFileRepository(path string, limit int) *FileRepository {
	if path == "" {
		path = DefaultPath
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &FileRepository{path: path, limit: limit, writeFile: renameio.WriteFile}
}

// Path returns the file location.
func (r *FileRepository) Path() string { return r.path }

// Load reads the history. A missing, unreadable or malformed file yields an empty store.
func (r *FileRepository) Load() *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.GetDefault().WithError(err).Warnf("history unreadable at %s, starting empty", r.path)
		}
		return NewStore()
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		// empty or malformed -> start fresh
		if len(data) > 0 {
			logger.GetDefault().WithError(err).Warnf("history malformed at %s, starting empty", r.path)
		}
		return NewStore()
	}
	return NewStore(items...)
}

// Save writes the most recent entries of store, replacing the file atomically.
// On error the previous file is left untouched.
func (r *FileRepository) Save(store *Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(store.Recent(r.limit)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := r.writeFile(r.path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}
