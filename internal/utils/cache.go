package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem membungkus data cache beserta waktu kedaluwarsa.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// GlobalCache - cache lokal in-process untuk halaman daftar artikel
// dan site settings.
type GlobalCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *GlobalCache
	cacheOnce     sync.Once
)

// GetCache mengembalikan instance cache singleton. Aman dipanggil dari
// banyak goroutine sekaligus.
func GetCache() *GlobalCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](500)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &GlobalCache{
			lruCache: l,
		}
	})
	return cacheInstance
}

// Set menyimpan data dengan TTL.
func (c *GlobalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get mengembalikan nil jika key tidak ada atau sudah kedaluwarsa.
func (c *GlobalCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete menghapus satu key.
func (c *GlobalCache) Delete(key string) {
	c.lruCache.Remove(key)
}
