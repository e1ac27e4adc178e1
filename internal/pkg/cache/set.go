package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// NoExpiration keeps an entry until it is deleted or the process exits.
const NoExpiration = cache.NoExpiration

func NewSet[T any](prefix string) *Set[T] {
	return &Set[T]{
		prefix: prefix + ":",
		c:      cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// Set is an in-process keyed cache. Concurrent MutexGetSet calls for the same key
// share a single computation.
type Set[T any] struct {
	// inflight de-duplicates concurrent MutexGetSet computations per key
	inflight singleflight.Group

	prefix string
	c      *cache.Cache
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string, dest *T) error {
	v, ok := c.c.Get(c.key(key))
	if !ok {
		return ErrNotFound
	}
	*dest = v.(T)
	return nil
}

func (c *Set[T]) Set(key string, value T, expire time.Duration) error {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to cache")
	}
	c.c.Set(key, value, expire)
	return nil
}

// MutexGetSet gets value from cache and writes to dest, or if the key does not exist, it executes valueFunc
// once for all concurrent callers of the same key, sets the value to cache and writes it to dest.
// Errors from valueFunc are returned to every waiting caller and nothing is cached.
// The first return value means whether the value is got from cache or not. True means calculated; False means got from cache.
func (c *Set[T]) MutexGetSet(key string, dest *T, valueFunc func() (T, error), expire time.Duration) (bool, error) {
	if err := c.Get(key, dest); err == nil {
		return false, nil
	}
	// onwards, cache key does not exist

	v, err, _ := c.inflight.Do(key, func() (any, error) {
		var cached T
		if err := c.Get(key, &cached); err == nil {
			return cached, nil
		}

		value, err := valueFunc()
		if err != nil {
			log.Error().Err(err).Str("key", c.key(key)).Msg("failed to get value from valueFunc() in MutexGetSet")
			return nil, err
		}

		_ = c.Set(key, value, expire)
		return value, nil
	})
	if err != nil {
		return true, err
	}

	*dest = v.(T)
	return true, nil
}

func (c *Set[T]) Count() int {
	return c.c.ItemCount()
}
