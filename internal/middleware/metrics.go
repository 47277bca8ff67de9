package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"workspace-listing-api/internal/metrics"
)

// Metrics returns a middleware that records request count and latency.
// The endpoint label is the route pattern (":subjectId", not the UUID) so
// cardinality stays bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			// 등록되지 않은 경로 (404)
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
