package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pinflow/internal/api/metrics"
	"pinflow/internal/service"
)

// TokenVerifier turns a bearer token into a user id.
type TokenVerifier func(ctx context.Context, token string) (string, error)

// Auth extracts the bearer token, verifies it and stores the user id in
// the request context for the service layer.
func Auth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx := service.WithUser(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Prometheus records request counts and latencies per route.
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
