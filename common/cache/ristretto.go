package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// GeneralCache 本地缓存，支持 TTL。满足 mahjong.ResultCache，
// 每个条目成本记 1，maxCost 即最多保留的条目数
type GeneralCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewGeneralCache ttl 为 0 表示不过期
func NewGeneralCache(maxCost int64, ttl time.Duration) (*GeneralCache, error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("maxCost 必须大于 0: %d", maxCost)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // 官方建议为条目数的 10 倍
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		// 成本按条目计，不计内部开销
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}
	return &GeneralCache{cache: cache, ttl: ttl}, nil
}

// Set 写入是异步的，可能被准入策略丢弃
func (c *GeneralCache) Set(key string, value any) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

func (c *GeneralCache) SetWithTTL(key string, value any, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *GeneralCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Wait 等待缓冲区里的写入生效
func (c *GeneralCache) Wait() {
	c.cache.Wait()
}

func (c *GeneralCache) Delete(key string) {
	c.cache.Del(key)
}

// Hits 命中和未命中次数
func (c *GeneralCache) Hits() (hits, misses uint64) {
	if c.cache.Metrics == nil {
		return 0, 0
	}
	return c.cache.Metrics.Hits(), c.cache.Metrics.Misses()
}

func (c *GeneralCache) Close() {
	c.cache.Close()
}
