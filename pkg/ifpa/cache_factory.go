package ifpa

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultCacheSize bounds a memory cache built without an explicit size.
const DefaultCacheSize = 1000

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeChain is a memory cache in front of a NATS KV cache.
	CacheTypeChain CacheType = "chain"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// CacheConfig configures cache backend.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType `mapstructure:"type" yaml:"type"`

	// MaxSize bounds the memory backend, or the memory tier of a chain.
	MaxSize int `mapstructure:"max_size" yaml:"max_size"`

	// NATS KV cache configuration
	NATS *NATSKVConfig `mapstructure:"nats" yaml:"nats"`
}

// NewCacheFromConfig creates a cache backend from configuration. A nil
// config yields a memory cache. CacheTypeNone yields a nil Cache, which
// leaves response caching off.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		return NewMemoryCache(DefaultCacheSize), nil
	}

	switch config.Type {
	case CacheTypeMemory, "":
		return NewMemoryCache(config.MaxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		cache, err := NewNATSKVCache(config.NATS)
		if err != nil {
			return nil, err
		}

		return cache, nil

	case CacheTypeChain:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		shared, err := NewNATSKVCache(config.NATS)
		if err != nil {
			return nil, err
		}

		return NewCacheChain(NewMemoryCache(config.MaxSize), shared), nil

	case CacheTypeNone:
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCache, config.Type)
	}
}

// CacheChain tries its tiers in order. A hit in a later tier is copied into
// the earlier ones; writes go to every tier.
type CacheChain struct {
	tiers []Cache
}

// NewCacheChain creates a chain, fastest tier first.
func NewCacheChain(tiers ...Cache) *CacheChain {
	return &CacheChain{tiers: tiers}
}

// Get returns the entry from the first tier holding key.
func (c *CacheChain) Get(ctx context.Context, key string) (*CacheEntry, error) {
	for hit, tier := range c.tiers {
		entry, err := tier.Get(ctx, key)
		if err != nil {
			continue
		}

		for _, faster := range c.tiers[:hit] {
			_ = faster.Set(ctx, key, entry)
		}

		return entry, nil
	}

	return nil, ErrKeyNotFoundAnyCache
}

// Set writes entry to every tier and reports every tier that failed.
func (c *CacheChain) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return c.each(func(tier Cache) error { return tier.Set(ctx, key, entry) })
}

// Delete removes key from every tier.
func (c *CacheChain) Delete(ctx context.Context, key string) error {
	return c.each(func(tier Cache) error { return tier.Delete(ctx, key) })
}

// Clear empties every tier.
func (c *CacheChain) Clear(ctx context.Context) error {
	return c.each(func(tier Cache) error { return tier.Clear(ctx) })
}

// Has reports whether any tier holds key.
func (c *CacheChain) Has(ctx context.Context, key string) bool {
	for _, tier := range c.tiers {
		if tier.Has(ctx, key) {
			return true
		}
	}

	return false
}

// Close closes the tiers that hold connections.
func (c *CacheChain) Close() error {
	return c.each(func(tier Cache) error {
		if closer, ok := tier.(io.Closer); ok {
			return closer.Close()
		}

		return nil
	})
}

func (c *CacheChain) each(fn func(tier Cache) error) error {
	var errs []error

	for _, tier := range c.tiers {
		err := fn(tier)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
