package utils

import (
	"sync"
	"time"
)

// RateLimiter 令牌桶限流
type RateLimiter struct {
	rate       float64
	capacity   float64
	tokens     float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

// NewRateLimiter 创建一个新的限流器
// rate: 每秒补充的令牌数
// burst: 桶的容量，最多允许的突发请求数
func NewRateLimiter(rate int, burst int) *RateLimiter {
	return newRateLimiter(rate, burst, time.Now)
}

func newRateLimiter(rate int, burst int, now func() time.Time) *RateLimiter {
	burst = max(burst, 1)
	return &RateLimiter{
		rate:       float64(rate),
		capacity:   float64(burst),
		tokens:     float64(burst),
		lastRefill: now(),
		now:        now,
	}
}

// Allow 取一个令牌，返回 false 表示应拒绝本次请求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens = min(rl.capacity, rl.tokens+elapsed*rl.rate)
	rl.lastRefill = now

	if rl.tokens >= 1.0 {
		rl.tokens -= 1.0
		return true
	}
	return false
}
