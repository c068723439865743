package gitlab

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// Cache is the backend interface for the optional GET response cache.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a cached response body with its expiry.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry is past its expiry.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// CacheOptions holds settings common to all backends.
type CacheOptions struct {
	// TTL is the lifetime applied to entries stored without an explicit
	// expiry.
	TTL time.Duration
}

// DefaultCacheOptions returns the default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{TTL: 5 * time.Minute}
}

// CacheKey derives a stable cache key from a request method and URL.
func CacheKey(method, url string) string {
	sum := sha256.Sum256([]byte(method + " " + url))

	return hex.EncodeToString(sum[:])
}

// MemoryCache is an in-process cache with a bounded entry count. When full,
// the oldest entry by insertion is evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	order   []string
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1000
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry, removing it when expired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the oldest one when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.order = append(c.order, key)
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !entry.Expired()
}

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL. Ignored when Conn is provided.
	URL string

	// Conn is an existing connection to reuse.
	Conn *nats.Conn

	// Bucket is the KV bucket name. Defaults to "gitlab-cache".
	Bucket string

	// TTL is the bucket-level entry lifetime.
	TTL time.Duration
}

// NATSKVCache stores entries in a NATS JetStream key-value bucket so
// multiple client processes can share one cache.
type NATSKVCache struct {
	conn     *nats.Conn
	kv       nats.KeyValue
	ownsConn bool
}

// NewNATSKVCache connects to NATS and binds or creates the configured
// bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn
	ownsConn := false

	if conn == nil {
		var err error

		conn, err = nats.Connect(config.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		ownsConn = true
	}

	js, err := conn.JetStream()
	if err != nil {
		if ownsConn {
			conn.Close()
		}

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = "gitlab-cache"
	}

	ttl := config.TTL
	if ttl == 0 {
		ttl = DefaultCacheOptions().TTL
	}

	kv, err := js.KeyValue(bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: bucket,
			TTL:    ttl,
		})
		if err != nil {
			if ownsConn {
				conn.Close()
			}

			return nil, fmt.Errorf("creating KV bucket %q: %w", bucket, err)
		}
	}

	return &NATSKVCache{conn: conn, kv: kv, ownsConn: ownsConn}, nil
}

// Get retrieves an entry from the bucket, removing it when expired.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kve, err := c.kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	var entry CacheEntry

	err = json.Unmarshal(kve.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(key, data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(key)
	if err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		// An empty bucket reports no keys as an error.
		return nil
	}

	for _, key := range keys {
		_ = c.kv.Purge(key)
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close releases the NATS connection when this cache opened it.
func (c *NATSKVCache) Close() {
	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}
