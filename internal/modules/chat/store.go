// README: Turn store backed by Redis lists with a session TTL.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const turnKeyPrefix = "chat:turns:%s"

// TurnStore holds the append-only turn log of each session.
type TurnStore interface {
	Append(ctx context.Context, sessionID string, t Turn) error
	List(ctx context.Context, sessionID string) ([]Turn, error)
}

// RedisStore keeps each session's turns as JSON entries in a Redis list,
// refreshed with the session TTL on every append. An unknown session simply
// has an empty log.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, t Turn) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal turn: %w", err)
	}
	key := turnKey(sessionID)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) List(ctx context.Context, sessionID string) ([]Turn, error) {
	entries, err := s.redis.LRange(ctx, turnKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]Turn, 0, len(entries))
	for _, e := range entries {
		var t Turn
		if err := json.Unmarshal([]byte(e), &t); err != nil {
			return nil, fmt.Errorf("unmarshal turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func turnKey(sessionID string) string {
	return fmt.Sprintf(turnKeyPrefix, sessionID)
}
