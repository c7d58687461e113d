package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hajj-guide/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// Registry tracks the tokens that are currently logged in, keyed by token id.
type Registry interface {
	Put(ctx context.Context, tokenID string, s entity.Session) error
	Get(ctx context.Context, tokenID string) (entity.Session, bool, error)
	// Delete reports whether the token was registered.
	Delete(ctx context.Context, tokenID string) (bool, error)
}

// MemoryRegistry keeps sessions in process memory. Sessions are lost when
// the process exits.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]entity.Session)}
}

func (r *MemoryRegistry) Put(_ context.Context, tokenID string, s entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[tokenID] = s
	return nil
}

func (r *MemoryRegistry) Get(_ context.Context, tokenID string) (entity.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[tokenID]
	return s, ok, nil
}

func (r *MemoryRegistry) Delete(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[tokenID]
	delete(r.sessions, tokenID)
	return ok, nil
}

// Len returns the number of live sessions.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

const redisKeyPrefix = "session:"

// RedisRegistry stores sessions in Redis without expiry so they survive
// restarts and are shared between processes.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func redisKey(tokenID string) string {
	return redisKeyPrefix + tokenID
}

func (r *RedisRegistry) Put(ctx context.Context, tokenID string, s entity.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(tokenID), payload, 0).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Get(ctx context.Context, tokenID string) (entity.Session, bool, error) {
	payload, err := r.client.Get(ctx, redisKey(tokenID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, false, nil
	}
	if err != nil {
		return entity.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	var s entity.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return entity.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return s, true, nil
}

func (r *RedisRegistry) Delete(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Del(ctx, redisKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return n > 0, nil
}
