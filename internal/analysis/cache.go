package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/pathwise/internal/question"
)

// Cache stores external analysis results keyed by Fingerprint.
type Cache interface {
	// Get returns the cached result for key. ok is false on a miss.
	Get(ctx context.Context, key string) (res *Result, ok bool, err error)

	// Set stores res under key.
	Set(ctx context.Context, key string, res *Result) error
}

// Fingerprint identifies a session's analysis input: the career, every
// presented question and every answer in submission order. Question text
// and options are part of the key because generated questions reuse IDs
// across sessions.
func Fingerprint(in Input) string {
	h := sha256.New()
	fmt.Fprintf(h, "career=%s\n", in.Career.ID)
	for _, q := range in.Questions {
		fmt.Fprintf(h, "q|%s\n", questionKey(q))
	}
	for _, a := range in.Answers {
		var raw string
		if a.Response != nil {
			raw = a.Response.String()
		}
		fmt.Fprintf(h, "a|%s|%q\n", questionKey(a.Question), raw)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func questionKey(q question.Question) string {
	return fmt.Sprintf("%s|%s|%s|%q|%q", q.ID, q.Skill, q.Kind, q.Text, q.Options)
}

// MemoryCache is a process-local Cache. Results are stored encoded so
// callers never share mutable state with the cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*Result, bool, error) {
	c.mu.Lock()
	b, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	return decodeResult(b)
}

func (c *MemoryCache) Set(_ context.Context, key string, res *Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	c.mu.Lock()
	c.entries[key] = b
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached results.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

const redisKeyPrefix = "pathwise:analysis:"

// RedisOptions configures a Redis-backed cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an existing client. A zero ttl keeps entries forever.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// OpenRedisCache connects to Redis and verifies the connection.
func OpenRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedisCache(client, opts.TTL), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Result, bool, error) {
	b, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return decodeResult(b)
}

func (c *RedisCache) Set(ctx context.Context, key string, res *Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func decodeResult(b []byte) (*Result, bool, error) {
	var res Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, false, fmt.Errorf("decode cached result: %w", err)
	}
	return &res, true, nil
}
