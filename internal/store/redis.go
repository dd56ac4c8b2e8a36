package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fortitwin/internal/model"
)

const sessionKeyPrefix = "session:"

// DefaultSessionTTL bounds how long an idle interview stays resumable
const DefaultSessionTTL = 2 * time.Hour

// RedisStore keeps sessions as JSON blobs in Redis with a TTL, so several
// server instances can share one session space.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store; ttl <= 0 uses the default
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	return s.set(ctx, session)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Update(ctx context.Context, session *model.Session) error {
	exists, err := s.client.Exists(ctx, sessionKeyPrefix+session.ID).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrSessionNotFound
	}
	return s.set(ctx, session)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisStore) set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}
