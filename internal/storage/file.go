package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FileStore keeps string values in a single JSON object file, the way a
// browser keeps localStorage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFile prepares a file store at path. The file is created on first write.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file location.
func (f *FileStore) Path() string {
	return f.path
}

// HighScores returns a core.ScoreStore persisting the best score under key.
func (f *FileStore) HighScores(key string) core.ScoreStore {
	return &fileScore{store: f, key: key}
}

// read loads the whole file. A missing file is an empty store.
func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w: %w", f.path, ErrMalformedScore, err)
	}
	return values, nil
}

// write replaces the file atomically.
func (f *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snake-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

type fileScore struct {
	store *FileStore
	key   string
}

func (h *fileScore) Load() (int, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	values, err := h.store.read()
	if err != nil {
		return 0, err
	}
	raw, ok := values[h.key]
	if !ok {
		return 0, nil
	}
	score, err := DecodeScore(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: %s: %w", h.key, err)
	}
	return score, nil
}

func (h *fileScore) Save(score int) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	values, err := h.store.read()
	if errors.Is(err, ErrMalformedScore) {
		values = map[string]string{} // start over from a corrupt file
	} else if err != nil {
		return err
	}

	if current, err := DecodeScore(values[h.key]); err == nil && current >= score {
		return nil
	}
	values[h.key] = EncodeScore(score)
	return h.store.write(values)
}
