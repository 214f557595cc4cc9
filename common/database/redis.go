package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gomahjong/common/config"
	"gomahjong/common/log"
)

type RedisManager struct {
	Cli *redis.Client
}

// NewRedis 建立连接并 Ping 一次
func NewRedis(ctx context.Context, redisConf config.RedisConf) (*RedisManager, error) {
	if !redisConf.Enabled() {
		return nil, fmt.Errorf("redis 配置出错: addr 为空")
	}
	cli := redis.NewClient(&redis.Options{
		Addr:         redisConf.Addr,
		Password:     redisConf.Password, // 没有密码时为空字符串
		PoolSize:     redisConf.PoolSize,
		MinIdleConns: redisConf.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis 连接错误: %w", err)
	}
	return &RedisManager{Cli: cli}, nil
}

func (r *RedisManager) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return r.Cli.Set(ctx, key, value, expiration).Err()
}

// Get 不存在时返回 redis.Nil
func (r *RedisManager) Get(ctx context.Context, key string) ([]byte, error) {
	return r.Cli.Get(ctx, key).Bytes()
}

func (r *RedisManager) Del(ctx context.Context, keys ...string) error {
	return r.Cli.Del(ctx, keys...).Err()
}

func (r *RedisManager) Close() error {
	if r == nil || r.Cli == nil {
		return nil
	}
	if err := r.Cli.Close(); err != nil {
		log.Error("redis 关闭出错: %v", err)
		return err
	}
	return nil
}
