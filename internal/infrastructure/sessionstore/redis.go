package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// keyPrefix mirrors the client's "vibra_user" local-storage key.
const keyPrefix = "vibra_user:"

// RedisStore is the Redis-backed session store, selected at startup when
// REDIS_URL is configured.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFromURL connects a Redis client from a URL string.
func NewRedisFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewRedisStore creates a session store over an existing client. A zero
// ttl keeps records until logout.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

var _ contract.ISessionStore = (*RedisStore)(nil)

// Save writes the user snapshot for a session.
func (s *RedisStore) Save(ctx context.Context, sessionID string, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err()
}

// Get returns the user snapshot for a session.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*entity.User, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the session record.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
