package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ksysoev/weatherkit/pkg/core"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	RedisAddr string `mapstructure:"redis_addr"`
	Password  string `mapstructure:"redis_password"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Credentials caches signed credentials in Redis so that separate processes
// sharing an identity reuse the same token until it expires.
type Credentials struct {
	db        *redis.Client
	keyPrefix string
}

// New initializes and returns a new Credentials instance configured with the provided Config.
func New(cfg *Config) *Credentials {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
	})

	return &Credentials{
		db:        rdb,
		keyPrefix: cfg.KeyPrefix,
	}
}

// Close terminates the connection to the Redis database and returns an error if the operation fails.
func (c *Credentials) Close() error {
	return c.db.Close()
}

// Load returns the credential stored under key, or nil if there is none or it has expired.
func (c *Credentials) Load(ctx context.Context, key string) (*core.Credential, error) {
	data, err := c.db.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	var cred core.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	if cred.Validate(time.Now()) != nil {
		return nil, nil
	}

	return &cred, nil
}

// Save stores cred under key. The entry is evicted by Redis once the credential expires.
func (c *Credentials) Save(ctx context.Context, key string, cred *core.Credential) error {
	if cred.Expired(time.Now()) {
		return fmt.Errorf("refusing to cache credential: %w", core.ErrTokenExpired)
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	redisKey := c.keyPrefix + key

	_, err = c.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKey, data, 0)
		pipe.ExpireAt(ctx, redisKey, cred.ExpiresAt)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	return nil
}
