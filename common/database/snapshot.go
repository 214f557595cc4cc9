package database

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotPrefix = "mahjong:analysis:"

// KV SnapshotStore 依赖的最小存储接口，RedisManager 实现它
type KV interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
}

// SnapshotStore 以请求内容为键缓存分析结果（JSON），多个实例共享
type SnapshotStore struct {
	kv  KV
	ttl time.Duration
}

func NewSnapshotStore(kv KV, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{kv: kv, ttl: ttl}
}

// SnapshotKey 由请求的规范化表示得到存储键
func SnapshotKey(canonical string) string {
	sum := sha1.Sum([]byte(canonical))
	return snapshotPrefix + hex.EncodeToString(sum[:])
}

func (s *SnapshotStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("snapshot 序列化失败: %w", err)
	}
	return s.kv.Set(ctx, key, data, s.ttl)
}

// Load 命中时解码到 out 并返回 true
func (s *SnapshotStore) Load(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("snapshot 解码失败: %w", err)
	}
	return true, nil
}

func (s *SnapshotStore) Forget(ctx context.Context, key string) error {
	return s.kv.Del(ctx, key)
}
