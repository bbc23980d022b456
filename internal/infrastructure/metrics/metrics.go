package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "os_service"

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Service orders opened.",
	})

	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Status transitions applied to service orders, by resulting status.",
	}, []string{"status"})

	codeCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "code_collisions_total",
		Help:      "Generated order codes discarded because they were already taken.",
	})

	approvalsBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "approvals_blocked_by_stock_total",
		Help:      "Budget approvals refused because an item was out of stock.",
	})

	stockCompensations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "inventory",
		Name:      "compensations_total",
		Help:      "Stock decrements rolled back after a failed approval, by outcome.",
	}, []string{"outcome"})
)

// GinMiddleware records request count, latency and in-flight gauge per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

func OrderCreated() {
	ordersCreated.Inc()
}

func OrderTransitioned(status string) {
	orderTransitions.WithLabelValues(status).Inc()
}

func CodeCollision() {
	codeCollisions.Inc()
}

func ApprovalBlockedByStock() {
	approvalsBlocked.Inc()
}

// StockCompensated records a rollback attempt; ok=false means stock may be off.
func StockCompensated(ok bool) {
	outcome := "restored"
	if !ok {
		outcome = "failed"
	}
	stockCompensations.WithLabelValues(outcome).Inc()
}
