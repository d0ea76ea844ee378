package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterInterface は、ログイン試行などの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow() bool
}

// RateLimiterは、固定ウィンドウ方式で操作の頻度を制限します。
// HTTPハンドラーから並行に呼ばれるため、内部でロックを取ります。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allowは現在のウィンドウに余裕があるかを返します。
// 上限に達している場合はfalseを返し、呼び出し側は429を返すことが期待されます。
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}
