package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// ConcurrencyLimit lets at most limit requests through at once. Requests wait
// for a free slot and get 503 if their context ends first.
func ConcurrencyLimit(limit int) gin.HandlerFunc {
	if limit <= 0 {
		limit = 1
	}
	sem := semaphore.NewWeighted(int64(limit))

	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			log.Printf("⚠️ No invocation slot available: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "too many concurrent invocations"})
			return
		}
		defer sem.Release(1)

		c.Next()
	}
}

// InvocationTimeout bounds the request context of each invocation.
func InvocationTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
