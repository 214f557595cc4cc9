package container

import (
	"context"
	"fmt"

	"gomahjong/analyzer/application/service"
	"gomahjong/analyzer/application/service/impl"
	"gomahjong/common/cache"
	"gomahjong/common/config"
	"gomahjong/common/database"
	"gomahjong/common/log"
	"gomahjong/engines/mahjong"
)

// AnalyzerContainer 管理分析服务的全部依赖
type AnalyzerContainer struct {
	cache     *cache.GeneralCache
	redis     *database.RedisManager // 未配置 redis 时为 nil
	analyzer  *mahjong.Analyzer
	snapshots *database.SnapshotStore
	service   service.AnalysisService
}

// NewAnalyzerContainer 创建搜索缓存、可选的 redis 快照和分析服务
func NewAnalyzerContainer(ctx context.Context, cfg *config.Config) (*AnalyzerContainer, error) {
	gc, err := cache.NewGeneralCache(cfg.Engine.CacheMaxCost, cfg.Engine.CacheTtl)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}
	c := &AnalyzerContainer{
		cache:    gc,
		analyzer: mahjong.NewAnalyzer(mahjong.NewSearcher(mahjong.WithCache(gc))),
	}

	if cfg.Redis.Enabled() {
		redis, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			gc.Close()
			return nil, err
		}
		c.redis = redis
		c.snapshots = database.NewSnapshotStore(redis, cfg.Redis.Ttl)
		log.Info("redis 快照已启用: %s", cfg.Redis.Addr)
	} else {
		log.Info("未配置 redis，不保存分析快照")
	}

	c.service = impl.NewAnalysisService(c.analyzer, c.snapshots, impl.Options{
		Workers:    cfg.Engine.BatchWorkers,
		BatchLimit: cfg.Engine.BatchLimit,
	})
	return c, nil
}

func (c *AnalyzerContainer) GetService() service.AnalysisService {
	return c.service
}

func (c *AnalyzerContainer) GetAnalyzer() *mahjong.Analyzer {
	return c.analyzer
}

// CacheHits 搜索缓存命中与未命中次数
func (c *AnalyzerContainer) CacheHits() (uint64, uint64) {
	return c.cache.Hits()
}

// Close 关闭所有资源
func (c *AnalyzerContainer) Close() error {
	c.cache.Close()
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Close(); err != nil {
		log.Error("redis 关闭失败: %v", err)
		return err
	}
	return nil
}
