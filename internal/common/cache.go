package common

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/patrickmn/go-cache"
)

const NoExpiration = cache.NoExpiration

// CacheKeySession is the single key under which the logged-in user id is remembered.
const CacheKeySession = "mockSessionUserId"

type Cache struct {
	*cache.Cache
	path string
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{Cache: cache.New(expirationTime, cleanupTime)}
}

// NewFileCache returns a cache backed by the file at path. Items saved there by a
// previous process are loaded; a missing file yields an empty cache.
// An empty path behaves like NewCache.
func NewFileCache(path string, expirationTime, cleanupTime time.Duration) (*Cache, error) {
	c := NewCache(expirationTime, cleanupTime)
	if path == "" {
		return c, nil
	}
	c.path = path

	err := c.Cache.LoadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load cache file %s: %w", path, err)
	}

	return c, nil
}

// Save writes every item to the backing file. Caches without one are left alone.
func (c *Cache) Save() error {
	if c.path == "" {
		return nil
	}

	if err := c.Cache.SaveFile(c.path); err != nil {
		return fmt.Errorf("save cache file %s: %w", c.path, err)
	}
	return nil
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

// GetString returns the value under key if it is a string.
func (c *Cache) GetString(key string) (string, bool) {
	v, ok := c.Cache.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *Cache) Delete(key string) {
	c.Cache.Delete(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}
