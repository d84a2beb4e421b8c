// Package clientcache holds per-client in-memory state. The number of clients
// is bounded (least recently used clients are evicted first) and a client that
// stays idle longer than the idle timeout is dropped on its next lookup.
package clientcache

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

type Limits struct {
	// MaxClients 为 0 表示不限数量
	MaxClients int
	// IdleTimeout 为 0 表示不过期
	IdleTimeout time.Duration
}

var DefaultLimits = Limits{MaxClients: 10000, IdleTimeout: 30 * time.Minute}

type entry[V any] struct {
	value    V
	lastSeen time.Time
}

type Cache[V any] struct {
	mu   sync.Mutex
	lru  *lru.Cache
	idle time.Duration
	now  func() time.Time
}

// New 创建缓存。onEvict 在条目因容量、过期、Remove 或 Clear 被移除时调用，
// 调用时持有缓存锁，不能回调缓存自身
func New[V any](limits Limits, onEvict func(clientID string, v V)) *Cache[V] {
	c := &Cache[V]{
		lru:  lru.New(limits.MaxClients),
		idle: limits.IdleTimeout,
		now:  time.Now,
	}
	if onEvict != nil {
		c.lru.OnEvicted = func(key lru.Key, value interface{}) {
			onEvict(key.(string), value.(*entry[V]).value)
		}
	}
	return c
}

func (c *Cache[V]) Get(clientID string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(clientID)
}

func (c *Cache[V]) getLocked(clientID string) (V, bool) {
	var zero V
	raw, ok := c.lru.Get(clientID)
	if !ok {
		return zero, false
	}

	e := raw.(*entry[V])
	now := c.now()
	if c.idle > 0 && now.Sub(e.lastSeen) > c.idle {
		c.lru.Remove(clientID)
		return zero, false
	}
	e.lastSeen = now
	return e.value, true
}

// GetOrCreate 返回已有的值，不存在或已过期时用 create 创建
func (c *Cache[V]) GetOrCreate(clientID string, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.getLocked(clientID); ok {
		return v
	}
	v := create()
	c.lru.Add(clientID, &entry[V]{value: v, lastSeen: c.now()})
	return v
}

// Put 覆盖已有值时不会触发 onEvict
func (c *Cache[V]) Put(clientID string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(clientID, &entry[V]{value: v, lastSeen: c.now()})
}

func (c *Cache[V]) Remove(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(clientID)
}

// RemoveIf 仅当当前值满足 match 时移除
func (c *Cache[V]) RemoveIf(clientID string, match func(V) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.lru.Get(clientID)
	if !ok || !match(raw.(*entry[V]).value) {
		return false
	}
	c.lru.Remove(clientID)
	return true
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}
