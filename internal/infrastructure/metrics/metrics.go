package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry groups the application's Prometheus collectors
type Registry struct {
	SyncSnapshots           prometheus.Counter
	SyncSnapshotFailures    prometheus.Counter
	ActiveSubscriptions     prometheus.Gauge
	NotificationsSent       *prometheus.CounterVec
	NotificationsSuppressed prometheus.Counter
	AIRequests              *prometheus.CounterVec
}

// New registers all collectors on the default registry
func New() *Registry {
	return &Registry{
		SyncSnapshots: promauto.NewCounter(prometheus.CounterOpts{
			Name: "meetsync_sync_snapshots_total",
			Help: "Number of full user snapshots assembled",
		}),
		SyncSnapshotFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "meetsync_sync_snapshot_failures_total",
			Help: "Number of snapshot assemblies aborted by a failed read",
		}),
		ActiveSubscriptions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "meetsync_active_subscriptions",
			Help: "Live meeting update subscriptions currently registered",
		}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "meetsync_notifications_sent_total",
			Help: "Notifications persisted, by type",
		}, []string{"type"}),
		NotificationsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "meetsync_notifications_suppressed_total",
			Help: "Task assignment notifications dropped by recipient preference",
		}),
		AIRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "meetsync_ai_requests_total",
			Help: "Transcript analysis requests, by outcome",
		}, []string{"outcome"}),
	}
}
