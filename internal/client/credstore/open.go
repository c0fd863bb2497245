package credstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskease/internal/client/config"
	"github.com/dmitrijs2005/taskease/internal/filex"
	"github.com/redis/go-redis/v9"
)

// Open builds the Store selected by cfg.CredentialBackend, scoped to the
// origin of cfg.APIBaseURL. The returned close function releases the
// backend's connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	origin, err := Origin(cfg.APIBaseURL)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }

	switch cfg.CredentialBackend {
	case config.BackendMemory:
		return NewMemoryStore(), noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, origin), client.Close, nil

	case config.BackendSQLite, "":
		path, err := filex.EnsureParentDir(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open credential store %s: %w", path, err)
		}
		return NewSQLiteStore(db, origin), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown credential backend %q", cfg.CredentialBackend)
	}
}
