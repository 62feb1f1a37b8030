// Package metrics defines and registers all custom Prometheus metrics
// for the parcel tracking service. It is the single source of truth for
// metric names, labels, and help strings. Metrics register with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parcelpro"

// ParcelsCreatedTotal counts newly created parcels.
// Label:
//   - service_type: "standard" or "express"
var ParcelsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parcels_created_total",
		Help:      "Total number of parcels created, by service type.",
	},
	[]string{"service_type"},
)

// StatusUpdatesTotal counts successfully applied status transitions.
// Label:
//   - status: the new parcel status (e.g. "out_for_delivery")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of status updates successfully applied.",
	},
	[]string{"status"},
)

// StatusUpdateErrorsTotal counts rejected status updates.
// Label:
//   - reason: "invalid_transition", "not_found", "busy", or "internal"
var StatusUpdateErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_update_errors_total",
		Help:      "Total number of status updates rejected, by reason.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the current number of entries waiting in each
// audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of entries pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// StatusUpdateDuration measures how long a status update takes
// end-to-end, including lock acquisition.
var StatusUpdateDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "status_update_duration_seconds",
		Help:      "Duration of status update handling from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
