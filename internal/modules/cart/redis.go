package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// cartTTL bounds how long an abandoned cart is kept.
const cartTTL = 7 * 24 * time.Hour

// RedisStore keeps carts in Redis so they survive restarts and can be shared
// across instances. Ledgers are stored as JSON under a namespaced key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore dials Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Close releases the underlying Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context, customerEmail string) (*Ledger, error) {
	data, err := s.client.Get(ctx, s.key(customerEmail)).Bytes()
	if err == redis.Nil {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	l := &Ledger{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return l, nil
}

func (s *RedisStore) Save(ctx context.Context, customerEmail string, l *Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.key(customerEmail), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, customerEmail string) error {
	if err := s.client.Del(ctx, s.key(customerEmail)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *RedisStore) key(customerEmail string) string {
	return "ecobazaar:cart:" + customerEmail
}
