package editor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	editorerrors "go-payslip/internal/editor/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "editor:session:"

//go:generate mockgen -source=editor_store.go -destination=mock/editor_store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, session Session) error
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore keeps sessions as JSON under editor:session:<id>. Every write
// refreshes the ttl.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func Key(id string) string {
	return keyPrefix + id
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, editorerrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisStore) Put(ctx context.Context, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key(session.ID), payload, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, Key(id)).Err()
}
