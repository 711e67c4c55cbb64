package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
)

// Metrics records request timings against the metrics registry.
func Metrics(metrics *service.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
