package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors:
// - http_requests_total: requests by route, method and status
// - http_request_duration_seconds: latency by route and method
// - article_views_total: public single-article fetches
// - article_publications_total: transitions into PUBLISHED
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	ArticleViews        = prometheus.NewCounter(prometheus.CounterOpts{Name: "article_views_total", Help: "Public article fetches."})
	ArticlePublications = prometheus.NewCounter(prometheus.CounterOpts{Name: "article_publications_total", Help: "Articles moved into PUBLISHED."})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, ArticleViews, ArticlePublications)
}

// Handler returns the middleware recording request counts and latency.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer serves the default registry in the Prometheus text format.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
