// Package metrics defines the Prometheus metrics exported by the portal.
// Everything registers with the default registry at init time; the /metrics
// endpoint serves it via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bankportal"

// MessagesSentTotal counts messages persisted through the messaging usecase.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages persisted.",
	},
)

// BroadcastDroppedTotal counts websocket deliveries dropped because a peer's
// send buffer was full or its connection was gone.
var BroadcastDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_dropped_total",
		Help:      "Total number of live-channel deliveries dropped per peer.",
	},
)

// UsersApprovedTotal counts approval actions completed by the administrator.
var UsersApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_approved_total",
		Help:      "Total number of users approved.",
	},
)

// AccountsProvisionedTotal counts accounts created by approval or by the
// reconciliation job.
var AccountsProvisionedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_provisioned_total",
		Help:      "Total number of default accounts provisioned.",
	},
)

// WSConnectionsActive tracks currently open websocket connections.
var WSConnectionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ws_connections_active",
		Help:      "Number of currently connected websocket peers.",
	},
)
