package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MemoryStore keeps scores and run history for the life of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	runs   []ScoreEntry
}

// NewMemory creates an empty memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// HighScores returns a core.ScoreStore persisting the best score under key.
func (m *MemoryStore) HighScores(key string) core.ScoreStore {
	return &memoryScore{store: m, key: key}
}

// RecordRun implements History.
func (m *MemoryStore) RecordRun(gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, ScoreEntry{
		ID:        int64(len(m.runs) + 1),
		RunID:     uuid.NewString(),
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopScores implements History.
func (m *MemoryStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []ScoreEntry
	for _, e := range m.runs {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// ClearScores implements Clearer. The high score is kept.
func (m *MemoryStore) ClearScores(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.runs[:0]
	for _, e := range m.runs {
		if e.GameID != gameID {
			kept = append(kept, e)
		}
	}
	m.runs = kept
	return nil
}

type memoryScore struct {
	store *MemoryStore
	key   string
}

func (h *memoryScore) Load() (int, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return h.store.values[h.key], nil
}

func (h *memoryScore) Save(score int) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if score > h.store.values[h.key] {
		h.store.values[h.key] = score
	}
	return nil
}

var (
	_ History = (*MemoryStore)(nil)
	_ Clearer = (*MemoryStore)(nil)
)
