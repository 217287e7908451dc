package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AccessLog logs every request through zerolog and records its latency histogram.
func AccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	elapsed := time.Since(start)

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	metrics.RequestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())

	var ev *zerolog.Event
	switch {
	case status >= 500:
		ev = log.Error()
	case status >= 400:
		ev = log.Warn()
	default:
		ev = log.Debug()
	}
	if len(c.Errors) > 0 {
		ev = ev.Str("errors", c.Errors.String())
	}
	ev.Str("request_id", GetRequestID(c.Request.Context())).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", elapsed).
		Msg("http request")
}
