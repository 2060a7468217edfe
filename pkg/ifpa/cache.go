package ifpa

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultCacheTTL applies when a caching requester is built without a TTL.
const DefaultCacheTTL = 5 * time.Minute

// CacheEntry is a cached response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is stale at now.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Cache stores response bodies by key.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryCache is an in-process Cache bounded to maxSize entries.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	order   []string
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get returns a live entry or ErrCacheKeyNotFound.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	return entry, nil
}

// Set stores entry, evicting the oldest key when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.order) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.order = append(c.order, key)
	}

	c.entries[key] = entry

	return nil
}

// Delete removes key.
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

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// NATSKVConfig configures a NATS JetStream key-value cache.
type NATSKVConfig struct {
	URL    string
	Bucket string
	TTL    time.Duration
}

// NATSKVCache stores entries in a NATS JetStream key-value bucket, so several
// processes can share cached responses.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSKVCache connects to NATS and opens (or creates) the bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" || config.Bucket == "" {
		return nil, ErrNATSConfigRequired
	}

	conn, err := nats.Connect(config.URL, nats.Name("ifpa-client"))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening JetStream: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening key-value bucket %s: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Get returns a live entry or ErrCacheKeyNotFound.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	stored, err := c.kv.Get(key)
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("reading cache key: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(stored.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	return &entry, nil
}

// Set stores entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(key, data)
	if err != nil {
		return fmt.Errorf("writing cache key: %w", err)
	}

	return nil
}

// Delete removes key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(key)
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache key: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err = c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("purging cache key: %w", err)
		}
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close drains the NATS connection.
func (c *NATSKVCache) Close() error {
	return c.conn.Drain()
}

// CachingRequester serves repeated GET requests from a Cache. Only successful
// responses are stored; every miss is forwarded to the wrapped Requester.
type CachingRequester struct {
	next  Requester
	cache Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewCachingRequester wraps next with cache.
func NewCachingRequester(next Requester, cache Cache, ttl time.Duration) *CachingRequester {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CachingRequester{next: next, cache: cache, ttl: ttl, now: time.Now}
}

// Request implements Requester.
func (c *CachingRequester) Request(ctx context.Context, req *Request) (json.RawMessage, error) {
	if req.Method != http.MethodGet {
		return c.next.Request(ctx, req)
	}

	key := CacheKey(req)

	entry, err := c.cache.Get(ctx, key)
	if err == nil {
		return json.RawMessage(entry.Data), nil
	}

	raw, err := c.next.Request(ctx, req)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(ctx, key, &CacheEntry{Data: raw, ExpiresAt: c.now().Add(c.ttl)})

	return raw, nil
}

// CacheKey derives a stable key from method, path and params. The key only
// uses characters NATS accepts in key names.
func CacheKey(req *Request) string {
	sum := sha256.Sum256([]byte(req.Method + " " + req.NormalizedPath() + "?" + req.Params.Values().Encode()))

	return "ifpa." + hex.EncodeToString(sum[:])
}
