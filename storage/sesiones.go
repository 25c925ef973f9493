// Package storage keeps the ids of issued login tokens so logout can revoke them.
package storage

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionStore tracks live token ids (jti) until they expire or are revoked.
type SessionStore interface {
	Guardar(ctx context.Context, jti, usuario string, ttl time.Duration) error
	Existe(ctx context.Context, jti string) (bool, error)
	Revocar(ctx context.Context, jti string) error
}

const prefijoSesion = "sesion:"

type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore accepts either a redis:// URL or a bare host:port.
func NewRedisSessionStore(redisURL string) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL, DB: 0}
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Println("🔧 Redis initialized with address:", opts.Addr)
	return &RedisSessionStore{Client: client}, nil
}

func (s *RedisSessionStore) Guardar(ctx context.Context, jti, usuario string, ttl time.Duration) error {
	return s.Client.Set(ctx, prefijoSesion+jti, usuario, ttl).Err()
}

func (s *RedisSessionStore) Existe(ctx context.Context, jti string) (bool, error) {
	_, err := s.Client.Get(ctx, prefijoSesion+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisSessionStore) Revocar(ctx context.Context, jti string) error {
	return s.Client.Del(ctx, prefijoSesion+jti).Err()
}

// MemorySessionStore serves a single process (tests, sqlite dev mode).
type MemorySessionStore struct {
	mu      sync.Mutex
	expiran map[string]time.Time
	now     func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{expiran: make(map[string]time.Time), now: time.Now}
}

func (s *MemorySessionStore) Guardar(_ context.Context, jti, _ string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiran[jti] = s.now().Add(ttl)
	return nil
}

func (s *MemorySessionStore) Existe(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.expiran[jti]
	if !ok {
		return false, nil
	}
	if !s.now().Before(exp) {
		delete(s.expiran, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemorySessionStore) Revocar(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expiran, jti)
	return nil
}

// Open returns a redis store when redisURL is set, the in-memory store otherwise.
func Open(redisURL string) (SessionStore, error) {
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, sessions kept in memory")
		return NewMemorySessionStore(), nil
	}
	return NewRedisSessionStore(redisURL)
}
