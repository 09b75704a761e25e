// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts query operations by name.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbahub_queries_total",
			Help: "Total number of query operations served",
		},
		[]string{"operation"},
	)

	// IdentityAmbiguousTotal counts team identity lookups that found more
	// than one active history record, a schema invariant the resolver
	// degrades around instead of failing.
	IdentityAmbiguousTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nbahub_identity_ambiguous_total",
			Help: "Team identity resolutions with multiple active records",
		},
	)

	// IngestRowsTotal counts ingested rows by collection and outcome
	// (inserted or skipped on natural-key conflict).
	IngestRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbahub_ingest_rows_total",
			Help: "Rows presented to the ingest path",
		},
		[]string{"collection", "outcome"},
	)

	// CacheHitsTotal / CacheMissesTotal track the redis query cache.
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nbahub_cache_hits_total",
			Help: "Query cache hits",
		},
	)
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nbahub_cache_misses_total",
			Help: "Query cache misses",
		},
	)
)
