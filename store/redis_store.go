package store

import (
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v7"
)

// redisStore persists runs as JSON values in redis, keyed by run ID. Shared
// by the API server and queue workers.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, password string, db int) *redisStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *redisStore) Save(run *Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("could not marshal run %s: %w", run.ID, err)
	}
	if err := s.client.Set(runKey(run.ID), b, 0).Err(); err != nil {
		return fmt.Errorf("could not write run %s to redis: %w", run.ID, err)
	}
	return nil
}

func (s *redisStore) Find(id string) (*Run, error) {
	b, err := s.client.Get(runKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrRunNotFound
	} else if err != nil {
		return nil, fmt.Errorf("could not read run %s from redis: %w", id, err)
	}

	var run Run
	if err := json.Unmarshal(b, &run); err != nil {
		return nil, fmt.Errorf("could not unmarshal run %s: %w", id, err)
	}
	return &run, nil
}

func runKey(id string) string { return "metropolis:run:" + id }
