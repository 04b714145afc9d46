// Package metrics defines the Prometheus metrics of the library service.
// Every metric is registered with the default registry on package init
// and exposed by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// Rule labels of RuleViolationsTotal.
const (
	RuleValidation      = "validation"
	RuleDuplicateRating = "duplicate_rating"
	RuleBookUnavailable = "book_unavailable"
	RuleAlreadyReturned = "already_returned"
)

// BorrowsCreatedTotal counts books handed out.
var BorrowsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrows_created_total",
		Help:      "Total number of borrow records opened.",
	},
)

// BorrowsReturnedTotal counts books brought back.
var BorrowsReturnedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrows_returned_total",
		Help:      "Total number of borrow records closed.",
	},
)

// RatingsCreatedTotal counts stored ratings.
var RatingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_created_total",
		Help:      "Total number of ratings stored.",
	},
)

// RuleViolationsTotal counts requests rejected by a domain rule.
// Label:
//   - rule: one of the Rule* constants
var RuleViolationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rule_violations_total",
		Help:      "Total number of requests rejected by a domain rule.",
	},
	[]string{"rule"},
)

// EventsPublishedTotal counts Kafka publish attempts.
// Labels:
//   - type: event type (e.g. "borrow.created")
//   - result: "ok", "error" or "skipped"
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of domain events handed to Kafka, by result.",
	},
	[]string{"type", "result"},
)

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/books/{id}")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
