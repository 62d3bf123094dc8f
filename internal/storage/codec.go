package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrMalformedScore is returned when a stored high score is not an integer.
var ErrMalformedScore = errors.New("malformed score")

// EncodeScore renders a score the way it is persisted: an integer as JSON text.
func EncodeScore(score int) string {
	data, _ := json.Marshal(score) // an int always encodes
	return string(data)
}

// DecodeScore parses a persisted score. Anything other than a JSON integer
// yields an error wrapping ErrMalformedScore.
func DecodeScore(raw string) (int, error) {
	var score int
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &score); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedScore, raw)
	}
	return score, nil
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	CreatedAt time.Time
}

// History records finished runs per game mode.
type History interface {
	RecordRun(gameID string, score int) error
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
}

// Clearer is implemented by histories that can drop a mode's runs.
type Clearer interface {
	ClearScores(gameID string) error
}

// StatsSource is implemented by histories that aggregate runs per mode.
type StatsSource interface {
	GetGameStats(gameID string) (*GameStats, error)
	GetAllGamesStats() (map[string]*GameStats, error)
}

// expandPath expands a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// parseTime converts a DATETIME column value.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
