package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics feeds request counts and latencies to a RequestObserver.
type Metrics struct {
	observer RequestObserver
}

func NewMetrics(observer RequestObserver) *Metrics {
	return &Metrics{observer: observer}
}

func (m *Metrics) Handle(c *gin.Context) {
	start := time.Now()
	c.Next()
	m.observer.ObserveRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
}
