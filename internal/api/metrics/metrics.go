// Package metrics defines and registers the custom Prometheus metrics for the
// farm management API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farm"

// --- Auth metrics ---

// LoginsTotal counts login attempts by role and result ("success"/"failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// AuthFailuresTotal counts requests rejected by the auth middleware chain.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_principal",
//     "missing_principal", or "forbidden_role"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// --- Order metrics ---

// OrdersPlacedTotal counts orders accepted through the public storefront.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of customer orders placed.",
	},
)

// OrderEventsProcessedTotal counts order audit events that completed
// processing, labelled by result ("ok"/"error").
var OrderEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_processed_total",
		Help:      "Total number of order audit events processed, by result.",
	},
	[]string{"result"},
)

// OrderQueueDepth tracks the number of events waiting in each worker channel.
var OrderQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "order_queue_depth",
		Help:      "Current number of order events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
