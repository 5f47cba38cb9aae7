package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/potatoworkshop/trellobot/internal/domain"
	"github.com/potatoworkshop/trellobot/internal/ports"
)

// Store keeps session context in redis under
// session:<conversation>:<field>. Values never expire; a conversation's
// selection stays valid until overwritten.
type Store struct {
	client *redis.Client
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(client *redis.Client) *Store {
	if client == nil {
		panic("redis.NewStore: client is nil")
	}
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, conversation string, field domain.SessionField) (string, error) {
	value, err := s.client.Get(ctx, key(conversation, field)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("read session field %s: %w", field, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, conversation string, field domain.SessionField, value string) error {
	if err := s.client.Set(ctx, key(conversation, field), value, 0).Err(); err != nil {
		return fmt.Errorf("write session field %s: %w", field, err)
	}
	return nil
}

func key(conversation string, field domain.SessionField) string {
	return "session:" + conversation + ":" + string(field)
}
