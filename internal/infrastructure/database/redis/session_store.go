// internal/infrastructure/database/redis/session_store.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/verve-shop/storefront/internal/domain/session"
)

const sessionKeyFormat = "session:%s"

// SessionStore keeps sessions as JSON with a sliding TTL
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store
func NewSessionStore(c *Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: c.Redis, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf(sessionKeyFormat, id)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session from Redis: %w", err)
	}
	return session.Decode(data)
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session to Redis: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}
	return nil
}
