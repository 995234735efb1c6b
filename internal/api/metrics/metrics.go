// Package metrics defines all custom Prometheus metrics for the cat registry
// API. It is the single source of truth for metric names, labels, and help
// strings; the echoprometheus middleware covers per-request HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catregistry"

// CatsCreatedTotal counts successfully created cat records.
var CatsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cats_created_total",
		Help:      "Total number of cat records created.",
	},
)

// AreaQueriesTotal counts area queries.
// Label:
//   - result: "ok" or "invalid" (rejected bounds)
var AreaQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "area_queries_total",
		Help:      "Total number of area queries, labelled by result.",
	},
	[]string{"result"},
)

// AreaQueryDuration measures how long an area query takes end-to-end,
// including the containment lookup in the store.
var AreaQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "area_query_duration_seconds",
		Help:      "Duration of area queries from parse to result.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuthzDenialsTotal counts authorization denials.
// Labels:
//   - path: the route that was denied (e.g. "/v1/cats/:id")
//   - reason: "unauthenticated" or "not_authorized"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied authorization checks.",
	},
	[]string{"path", "reason"},
)

// MediaIngestsTotal counts media pipeline runs.
// Label:
//   - result: "ok" or "error"
var MediaIngestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_ingests_total",
		Help:      "Total number of media pipeline ingests, labelled by result.",
	},
	[]string{"result"},
)
