// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/emerge/auth"
	"golang.org/x/time/rate"
)

const (
	defaultEntryTTL        = 15 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client. Entries idle longer than
// the TTL are dropped during periodic cleanup.
type RateLimiter struct {
	mu              sync.Mutex
	limit           rate.Limit
	burst           int
	entries         map[string]*limiterEntry
	entryTTL        time.Duration
	cleanupInterval time.Duration
	lastCleanup     time.Time
	tokenSalt       string
	now             func() time.Time
}

// NewRateLimiter allows requestsPerMinute per client with an equal burst.
// tokenSalt verifies user tokens so that only authenticated requests get a
// per-user bucket. Returns nil (no limiting) when requestsPerMinute <= 0.
func NewRateLimiter(requestsPerMinute int, tokenSalt string) *RateLimiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:           rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:           requestsPerMinute,
		entries:         make(map[string]*limiterEntry),
		entryTTL:        defaultEntryTTL,
		cleanupInterval: defaultCleanupInterval,
		lastCleanup:     time.Now(),
		tokenSalt:       tokenSalt,
		now:             time.Now,
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil || key == "" {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastCleanup) >= rl.cleanupInterval {
		for k, entry := range rl.entries {
			if now.Sub(entry.lastSeen) > rl.entryTTL {
				delete(rl.entries, k)
			}
		}
		rl.lastCleanup = now
	}

	entry, ok := rl.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	if rl == nil {
		return 0
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

// Wrap rejects requests over the limit with 429 and a JSON error.
func (rl *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(RateLimitKey(r, rl.tokenSalt)) {
			w.Header().Set("Retry-After", "60")
			ErrorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next(w, r)
	}
}

// RateLimitKey identifies the client by user ID when the X-User-ID and
// X-User-Token headers verify against tokenSalt. Anything else, including
// an unverified user ID, is keyed by client IP.
func RateLimitKey(r *http.Request, tokenSalt string) string {
	if tokenSalt != "" {
		if userID, err := auth.UserFromRequest(r, tokenSalt); err == nil {
			return "user:" + userID
		}
	}
	if ip := GetClientIP(r); ip != "" {
		return "ip:" + ip
	}
	return "anonymous"
}
