// Package metrics declares the Prometheus metrics of the API. All of them are
// registered on the default registry at package init and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "iris"

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels: method, route (the registered path, "unmatched" for 404s), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// RateLimitedTotal counts requests rejected by the per-ip limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"path"},
)

// LoginBlocksTotal counts brute-force blocks. Label level: "minute" or "hour".
var LoginBlocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_blocks_total",
		Help:      "Total number of client ips blocked after repeated login failures.",
	},
	[]string{"level"},
)

// ── Accounts ──────────────────────────────────────────────────────────────────

const (
	EmpIDAllocated = "allocated"
	EmpIDSupplied  = "supplied"
)

// AccountsCreatedTotal counts created accounts.
// Label emp_id_source: "allocated" or "supplied".
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by where the employee id came from.",
	},
	[]string{"emp_id_source"},
)

// LoginsTotal counts login attempts that reached the store.
// Label result: "success", "invalid_credentials" or "invalid_password".
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// ── Employee id allocation ────────────────────────────────────────────────────

const (
	RetryCandidateTaken = "candidate_taken"
	RetryInsertRejected = "insert_rejected"
)

// EmpIDRetriesTotal counts allocation retries.
// Label reason: "candidate_taken" (existence check hit) or
// "insert_rejected" (unique index rejected the insert).
var EmpIDRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emp_id_retries_total",
		Help:      "Total number of employee id allocation retries, by reason.",
	},
	[]string{"reason"},
)

var EmpIDExhaustedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emp_id_exhausted_total",
		Help:      "Total number of allocations that gave up after the attempt limit.",
	},
)

var EmpIDLockWait = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "emp_id_lock_wait_seconds",
		Help:      "Time spent waiting for the employee id allocation lock.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 3},
	},
)
