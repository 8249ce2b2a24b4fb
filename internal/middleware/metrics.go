// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-service/internal/metrics"
)

// Operational endpoints are scraped constantly and would drown out the
// traffic that matters.
var unobservedPaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
	"/ready":   {},
	"/live":    {},
}

// Metrics records request counts, latencies, and the in-flight gauge for
// every observed route. Unmatched requests are bucketed under a single label
// so bots probing random paths cannot explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if _, skip := unobservedPaths[path]; skip {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
