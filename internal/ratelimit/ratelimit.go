package ratelimit

import (
	"sync"
	"time"

	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"golang.org/x/time/rate"
)

// Limiter throttles model-backed generation per account. Generation calls
// are the only expensive operation in the pipeline; reads are not limited.
type Limiter interface {
	Allow(accountID int64) bool
}

// InMemoryLimiter keeps one token bucket per account.
type InMemoryLimiter struct {
	accounts map[int64]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

// New builds a limiter from the configured generations-per-minute rate and
// burst size.
func New(cfg *config.Config) Limiter {
	perMinute := cfg.RateLimit.GenerationsPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := cfg.RateLimit.GenerationBurst
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		accounts: make(map[int64]*rate.Limiter),
		r:        rate.Every(time.Minute / time.Duration(perMinute)),
		b:        burst,
	}
}

// Allow reports whether the account may start another generation now.
func (l *InMemoryLimiter) Allow(accountID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.accounts[accountID]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.accounts[accountID] = limiter
	}

	return limiter.Allow()
}
