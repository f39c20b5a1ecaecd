package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"goldensage/pkg/response"
)

// visitorLimiters keeps one token bucket per authenticated user.
type visitorLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newVisitorLimiters() *visitorLimiters {
	return &visitorLimiters{limiters: make(map[string]*rate.Limiter)}
}

func (v *visitorLimiters) get(key string, perMin int) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if lim, ok := v.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
	v.limiters[key] = lim
	return lim
}

// RateLimit allows perMin requests per minute per user, falling back to the
// client IP when the request is unauthenticated.
func (m Middleware) RateLimit(perMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMin <= 0 {
			c.Next()
			return
		}

		key := GetUserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiters.get(key, perMin).Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
