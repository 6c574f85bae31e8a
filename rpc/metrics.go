package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cnft",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "JSON-RPC calls by method and outcome.",
	}, []string{"method", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cnft",
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "JSON-RPC call latency by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

const (
	outcomeOK        = "ok"
	outcomeHTTP      = "http_error"
	outcomePayload   = "payload_error"
	outcomeMalformed = "malformed"
	outcomeNetwork   = "network_error"
	outcomeLimited   = "rate_limited"
)
