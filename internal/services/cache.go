package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// KeyPrefix namespaces every key this service writes to Redis
const KeyPrefix = "nfse:"

// CacheService stores serialized profiles in Redis, falling back to an
// in-process map whenever Redis is disabled or failing.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time

	mem memoryCache
}

// NewCacheService creates a new cache service. A nil client runs on the
// in-memory cache only.
func NewCacheService(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client: client,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		mem:    memoryCache{items: make(map[string]cacheItem)},
	}
}

func prefixed(key string) string {
	if strings.HasPrefix(key, KeyPrefix) {
		return key
	}
	return KeyPrefix + key
}

func (c *CacheService) warn(op, key string, err error) {
	c.logger.WithFields(logrus.Fields{
		"key":   key,
		"error": err.Error(),
	}).Warnf("Redis %s error, using memory cache", op)
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	key = prefixed(key)

	if c.client != nil {
		val, err := c.client.Get(ctx, key).Result()
		if err == nil {
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.warn("get", key, err)
		}
	}

	val, ok := c.mem.lookup(key, c.now())
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	key = prefixed(key)

	if c.client != nil {
		err := c.client.Set(ctx, key, value, c.ttl).Err()
		if err == nil {
			return nil
		}
		c.warn("set", key, err)
	}

	c.mem.put(key, value, c.now().Add(c.ttl))
	return nil
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	key = prefixed(key)

	if c.client != nil {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.warn("delete", key, err)
		}
	}

	c.mem.remove(key)
	return nil
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	key = prefixed(key)

	if c.client != nil {
		count, err := c.client.Exists(ctx, key).Result()
		if err == nil {
			return count > 0, nil
		}
		c.warn("exists", key, err)
	}

	_, ok := c.mem.lookup(key, c.now())
	return ok, nil
}

// Clear removes every key under KeyPrefix. Other keys of a shared Redis
// database are left alone.
func (c *CacheService) Clear(ctx context.Context) error {
	if c.client != nil {
		removed, err := c.eachRedisKey(ctx, func(key string) error {
			return c.client.Del(ctx, key).Err()
		})
		if err != nil {
			c.logger.WithField("error", err.Error()).Warn("Redis clear error")
		}
		c.logger.WithField("removed", removed).Debug("Redis keys cleared")
	}

	c.mem.reset()

	c.logger.Info("Cache cleared")
	return nil
}

// eachRedisKey calls fn for every key under KeyPrefix and returns how many
// calls succeeded.
func (c *CacheService) eachRedisKey(ctx context.Context, fn func(key string) error) (int, error) {
	var n int
	iter := c.client.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if fn(iter.Val()) == nil {
			n++
		}
	}
	return n, iter.Err()
}

// GetStats reports how many profile keys each backend holds
func (c *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	redisStats := map[string]interface{}{"available": false}
	if c.client != nil {
		keys, err := c.eachRedisKey(ctx, func(string) error { return nil })
		if err != nil {
			redisStats["error"] = err.Error()
		} else {
			redisStats["available"] = true
			redisStats["keys"] = keys
		}
	}

	return map[string]interface{}{
		"redis": redisStats,
		"memory": map[string]interface{}{
			"entries": c.mem.size(),
			"ttl":     c.ttl.String(),
			"prefix":  KeyPrefix,
		},
	}, nil
}

// Health pings Redis. The memory cache is always reported healthy.
func (c *CacheService) Health() map[string]interface{} {
	return map[string]interface{}{
		"redis":  c.redisStatus(),
		"memory": map[string]interface{}{"status": "healthy"},
	}
}

func (c *CacheService) redisStatus() map[string]interface{} {
	if c.client == nil {
		return map[string]interface{}{"status": "disabled"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return map[string]interface{}{"status": "unhealthy", "error": err.Error()}
	}
	return map[string]interface{}{"status": "healthy"}
}

// StartCleanupRoutine periodically drops expired memory entries until ctx is done
func (c *CacheService) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.mem.sweep(c.now())
			}
		}
	}()
}

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// memoryCache is the fallback store; expired entries are dropped lazily on
// lookup and in bulk by sweep.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
}

func (m *memoryCache) lookup(key string, now time.Time) (string, bool) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if now.After(item.expiresAt) {
		m.remove(key)
		return "", false
	}
	return item.value, true
}

func (m *memoryCache) put(key, value string, expiresAt time.Time) {
	m.mu.Lock()
	m.items[key] = cacheItem{value: value, expiresAt: expiresAt}
	m.mu.Unlock()
}

func (m *memoryCache) remove(key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

func (m *memoryCache) reset() {
	m.mu.Lock()
	m.items = make(map[string]cacheItem)
	m.mu.Unlock()
}

func (m *memoryCache) sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var dropped int
	for key, item := range m.items {
		if now.After(item.expiresAt) {
			delete(m.items, key)
			dropped++
		}
	}
	return dropped
}

func (m *memoryCache) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
