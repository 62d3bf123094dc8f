package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RedisStore keeps the high score in a plain string key and the run history
// in one sorted set per game mode. Writes to the high score are serialized
// with a redsync lock so several servers can share one instance.
type RedisStore struct {
	client  *redis.Client
	locker  *redsync.Redsync
	timeout time.Duration
	prefix  string
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds each operation. Zero means two seconds.
	Timeout time.Duration
	// Prefix namespaces the history keys.
	Prefix string
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	store := NewRedisStore(client, opts.Timeout, opts.Prefix)

	ctx, cancel := store.context()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", opts.Addr, err)
	}
	return store, nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, timeout time.Duration, prefix string) *RedisStore {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if prefix == "" {
		prefix = "snake"
	}
	pool := goredis.NewPool(client)
	return &RedisStore{
		client:  client,
		locker:  redsync.New(pool),
		timeout: timeout,
		prefix:  prefix,
	}
}

// Close closes the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r *RedisStore) historyKey(gameID string) string {
	return r.prefix + ":scores:" + gameID
}

// HighScores returns a core.ScoreStore persisting the best score under key.
func (r *RedisStore) HighScores(key string) core.ScoreStore {
	return &redisScore{store: r, key: key}
}

// RecordRun implements History. Each run is a sorted set member scored by
// its result; the member carries the run id and the time it ended.
func (r *RedisStore) RecordRun(gameID string, score int) error {
	ctx, cancel := r.context()
	defer cancel()

	member := uuid.NewString() + "|" + strconv.FormatInt(time.Now().Unix(), 10)
	err := r.client.ZAdd(ctx, r.historyKey(gameID), redis.Z{Score: float64(score), Member: member}).Err()
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores implements History.
func (r *RedisStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	ctx, cancel := r.context()
	defer cancel()

	members, err := r.client.ZRevRangeWithScores(ctx, r.historyKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(members))
	for i, z := range members {
		e := ScoreEntry{ID: int64(i + 1), GameID: gameID, Score: int(z.Score)}
		if m, ok := z.Member.(string); ok {
			runID, ts, _ := strings.Cut(m, "|")
			e.RunID = runID
			if sec, err := strconv.ParseInt(ts, 10, 64); err == nil {
				e.CreatedAt = time.Unix(sec, 0)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ClearScores deletes the run history for the given game mode.
func (r *RedisStore) ClearScores(gameID string) error {
	ctx, cancel := r.context()
	defer cancel()

	if err := r.client.Del(ctx, r.historyKey(gameID)).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

type redisScore struct {
	store *RedisStore
	key   string
}

func (h *redisScore) Load() (int, error) {
	ctx, cancel := h.store.context()
	defer cancel()

	raw, err := h.store.client.Get(ctx, h.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %q: %w", h.key, err)
	}
	score, err := DecodeScore(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: %s: %w", h.key, err)
	}
	return score, nil
}

// Save raises the stored value under a distributed lock.
func (h *redisScore) Save(score int) error {
	ctx, cancel := h.store.context()
	defer cancel()

	mutex := h.store.locker.NewMutex(h.key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("storage: cannot lock %q: %w", h.key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	raw, err := h.store.client.Get(ctx, h.key).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("storage: cannot read %q: %w", h.key, err)
	default:
		if current, err := DecodeScore(raw); err == nil && current >= score {
			return nil
		}
	}

	if err := h.store.client.Set(ctx, h.key, EncodeScore(score), 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

var (
	_ History = (*RedisStore)(nil)
	_ Clearer = (*RedisStore)(nil)
)
