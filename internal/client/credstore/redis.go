package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/common"
	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "taskease:credential:"

// RedisStore keeps the credential under prefix+origin+"/"+entry name.
// Keys carry no TTL: the credential is opaque and expiry is the server's call.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient, origin string) *RedisStore {
	return NewRedisStoreWithPrefix(client, defaultRedisPrefix, origin)
}

func NewRedisStoreWithPrefix(client redis.UniversalClient, prefix, origin string) *RedisStore {
	return &RedisStore{client: client, key: prefix + origin + "/" + common.CredentialEntryName}
}

func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, credential string) error {
	if err := s.client.Set(ctx, s.key, credential, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
