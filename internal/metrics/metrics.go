package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry Metrics
var (
	// ConnectedClients tracks number of handles currently present in the registry
	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_connected_clients",
			Help: "Number of clients currently registered for broadcast",
		},
	)

	// PrunedClientsTotal tracks clients removed by operator broadcast after a failed write
	PrunedClientsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_pruned_clients_total",
			Help: "Total clients pruned from the registry by operator broadcast",
		},
	)
)

// Message Metrics
var (
	// MessagesTotal tracks processed messages by kind (echo, relay, announce)
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total messages processed by kind",
		},
		[]string{"kind"},
	)

	// WriteFailuresTotal tracks failed writes to client endpoints by path (echo, relay, announce)
	WriteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_write_failures_total",
			Help: "Total failed writes to client connections by write path",
		},
		[]string{"path"},
	)
)

// Connection Metrics
var (
	// SessionsClosedTotal tracks finished sessions by close reason
	SessionsClosedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_sessions_closed_total",
			Help: "Total finished client sessions by close reason",
		},
		[]string{"reason"},
	)

	// SessionDuration tracks lifetime of client sessions in seconds
	SessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_session_duration_seconds",
			Help:    "Client session lifetime in seconds",
			Buckets: []float64{1, 10, 60, 300, 1800, 3600, 14400},
		},
	)

	// RejectedConnectionsTotal tracks connections refused before a session was started
	RejectedConnectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_rejected_connections_total",
			Help: "Total connections rejected before session start by reason",
		},
		[]string{"reason"},
	)
)
