package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter counts requests per client IP within a fixed window
type RateLimiter struct {
	mu        sync.Mutex
	counts    map[string]int
	lastReset time.Time
	rate      int           // requests per window
	window    time.Duration // time window
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts:    make(map[string]int),
		lastReset: time.Now(),
		rate:      rate,
		window:    window,
	}
}

// allow reports whether the client may proceed and records the request
func (l *RateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastReset) > l.window {
		l.counts = make(map[string]int)
		l.lastReset = time.Now()
	}

	if l.counts[clientIP] >= l.rate {
		return false
	}
	l.counts[clientIP]++
	return true
}

// RateLimit middleware limits requests per IP
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rate, window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !limiter.allow(clientIP) {
			slog.Warn("rate limit exceeded",
				"client_ip", clientIP,
				"request_id", GetRequestID(c),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
