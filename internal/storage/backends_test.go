package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScore(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{" 7\n", 7, false},
		{"-3", -3, false},
		{"", 0, true},
		{"abc", 0, true},
		{"3.5", 0, true},
		{`"5"`, 0, true},
		{"null", 0, false},
	}

	for _, tc := range tests {
		got, err := DecodeScore(tc.raw)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrMalformedScore, "raw %q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestEncodeScore(t *testing.T) {
	assert.Equal(t, "15", EncodeScore(15))
	assert.Equal(t, "0", EncodeScore(0))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	fs, err := OpenFile(path)
	require.NoError(t, err)

	hs := fs.HighScores("snake_highscore")

	score, err := hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, score, "missing file reads as zero")

	require.NoError(t, hs.Save(8))
	require.NoError(t, hs.Save(3))

	score, err = hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, score)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"snake_highscore": "8"`)

	// A second key lives alongside the first.
	require.NoError(t, fs.HighScores("other").Save(1))
	score, _ = hs.Load()
	assert.Equal(t, 8, score)
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"snake_highscore": "lots"}`), 0o644))

	fs, err := OpenFile(path)
	require.NoError(t, err)
	hs := fs.HighScores("snake_highscore")

	_, err = hs.Load()
	assert.ErrorIs(t, err, ErrMalformedScore)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = hs.Load()
	assert.ErrorIs(t, err, ErrMalformedScore)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr, "the decoder error is kept")

	require.NoError(t, hs.Save(2), "saving over a corrupt file starts fresh")
	score, err := hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	hs := m.HighScores("snake_highscore")

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_ = hs.Save(score)
		}(i)
	}
	wg.Wait()

	score, err := hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, score)

	require.NoError(t, m.RecordRun("snake", 3))
	require.NoError(t, m.RecordRun("snake", 9))
	require.NoError(t, m.RecordRun("snake_freeze", 1))

	top, err := m.TopScores("snake", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 9, top[0].Score)
	assert.NotEmpty(t, top[0].RunID)

	require.NoError(t, m.ClearScores("snake"))
	top, err = m.TopScores("snake", 10)
	require.NoError(t, err)
	assert.Empty(t, top)
	top, _ = m.TopScores("snake_freeze", 10)
	assert.Len(t, top, 1, "other modes keep their runs")
	score, _ = hs.Load()
	assert.Equal(t, 50, score, "clearing runs keeps the high score")
}

// Redis tests need a live server: SNAKE_TEST_REDIS_ADDR=localhost:6379.
func testRedis(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("SNAKE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SNAKE_TEST_REDIS_ADDR not set")
	}

	store, err := OpenRedis(RedisOptions{Addr: addr, Prefix: "snake_test"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisHighScore(t *testing.T) {
	store := testRedis(t)
	key := "snake_test:" + t.Name()
	t.Cleanup(func() {
		store.client.Del(context.Background(), key)
	})

	hs := store.HighScores(key)

	score, err := hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, hs.Save(6))
	require.NoError(t, hs.Save(2))

	score, err = hs.Load()
	require.NoError(t, err)
	assert.Equal(t, 6, score)

	require.NoError(t, store.client.Set(t.Context(), key, "junk", 0).Err())
	_, err = hs.Load()
	assert.ErrorIs(t, err, ErrMalformedScore)
}

func TestRedisHistory(t *testing.T) {
	store := testRedis(t)
	game := "history_" + t.Name()
	t.Cleanup(func() { store.ClearScores(game) })

	for _, s := range []int{4, 11, 7} {
		require.NoError(t, store.RecordRun(game, s))
	}

	top, err := store.TopScores(game, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 11, top[0].Score)
	assert.Equal(t, 7, top[1].Score)
	assert.NotEmpty(t, top[0].RunID)
	assert.False(t, top[0].CreatedAt.IsZero())
}

func TestOpenRedisUnreachable(t *testing.T) {
	_, err := OpenRedis(RedisOptions{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
