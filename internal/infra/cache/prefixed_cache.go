// Package cache provides the gocache-backed profile cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/pkg/errors"
)

// PrefixedCache stores JSON-encoded values of T under a key prefix in a
// shared cache. The memory store hands back the []byte it was given while
// the redis store returns a string, so both are accepted on read.
type PrefixedCache[T any] struct {
	cache  cache.CacheInterface[any]
	prefix string
}

// NewPrefixedCache creates a new prefixed cache wrapper.
func NewPrefixedCache[T any](c cache.CacheInterface[any], prefix string) *PrefixedCache[T] {
	return &PrefixedCache[T]{
		cache:  c,
		prefix: prefix,
	}
}

func (p *PrefixedCache[T]) key(key any) string {
	return p.prefix + fmt.Sprintf("%v", key)
}

// Get returns (value, true, nil) on a hit and (zero, false, nil) on a miss.
func (p *PrefixedCache[T]) Get(ctx context.Context, key any) (T, bool, error) {
	var result T

	value, err := p.cache.Get(ctx, p.key(key))
	if errors.Is(err, store.NotFound{}) {
		return result, false, nil
	}
	if err != nil {
		return result, false, errors.Wrap(err, "cache get")
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return result, false, errors.Errorf("cache value for %s has unexpected type %T", p.key(key), value)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, false, errors.Wrap(err, "cache decode")
	}

	return result, true, nil
}

// Set stores a value in the cache with the prefixed key.
func (p *PrefixedCache[T]) Set(ctx context.Context, key any, object T, options ...store.Option) error {
	data, err := json.Marshal(object)
	if err != nil {
		return errors.Wrap(err, "cache encode")
	}

	return errors.Wrap(p.cache.Set(ctx, p.key(key), data, options...), "cache set")
}

// Delete removes a value from the cache with the prefixed key. Deleting an
// absent key is not an error.
func (p *PrefixedCache[T]) Delete(ctx context.Context, key any) error {
	err := p.cache.Delete(ctx, p.key(key))
	if err == nil || errors.Is(err, store.NotFound{}) {
		return nil
	}

	return errors.Wrap(err, "cache delete")
}
