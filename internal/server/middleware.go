package server

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"auction-ranking/internal/metrics"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

var errRateLimited = errors.New("bid rate limit exceeded")

// maxTrackedClients bounds the limiter map; past it the map is reset.
const maxTrackedClients = 10000

// BidRateLimiter throttles bid submissions per client IP
type BidRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewBidRateLimiter(perSecond float64, burst int) *BidRateLimiter {
	return &BidRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (rl *BidRateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Middleware rejects a request with 429 once its client exceeds the limit
func (rl *BidRateLimiter) Middleware(c *gin.Context) {
	key := c.ClientIP()
	if rl.limiter(key).Allow() {
		c.Next()
		return
	}

	metrics.RecordBid("rate_limited")
	utils.JSONAbort(c, http.StatusTooManyRequests, errRateLimited, "too many bid submissions")
	utils.Warn("BidRateLimiter: request throttled", map[string]any{
		"client": key,
		"path":   c.Request.URL.Path,
	})
}
