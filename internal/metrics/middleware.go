package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// scrapePaths are never observed, so scraping does not feed the histogram
// it is reading.
var scrapePaths = map[string]bool{
	"/metrics":     true,
	"/api/metrics": true,
}

// Middleware times every request and records it labeled by method, matched
// route pattern and status code. Unmatched requests are labeled with the
// raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if scrapePaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		m.ObserveRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
