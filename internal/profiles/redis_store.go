package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyProfile = "profile:%s"

// RedisStore implements Store using Redis, one JSON value per user
type RedisStore struct {
	client *redis.Client
}

// creates a new Redis-backed profile store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// creates a new Redis-backed profile store from a URL
func NewRedisStoreFromURL(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// retrieves the profile stored for an email
func (s *RedisStore) Get(ctx context.Context, email string) (*Profile, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(keyProfile, email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}

	return &profile, nil
}

// stores the profile for an email, replacing any previous value. Profiles
// have no TTL: they live until overwritten.
func (s *RedisStore) Put(ctx context.Context, email string, profile *Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := s.client.Set(ctx, fmt.Sprintf(keyProfile, email), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// closes the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
