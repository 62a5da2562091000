// Package metrics holds the prometheus collectors of the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tidewise"

// Metrics holds the Prometheus counters and gauges of the tracker.
type Metrics struct {
	SOSSubmitted         *prometheus.CounterVec // labels: queue={live,offline}
	NotificationsCreated *prometheus.CounterVec // labels: type={sos_alert,authority_alert}
	OfflineQueueDepth    prometheus.Gauge
	ProviderFallbacks    *prometheus.CounterVec // labels: provider={weather,marine,advisory}, source={cached,mock}
	BoatsTracked         prometheus.Gauge
	EventsPublished      *prometheus.CounterVec // labels: outcome={success,error}
	PushesSent           *prometheus.CounterVec // labels: outcome={success,failure}
}

func newCollectors(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}

	return &Metrics{
		SOSSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sos_submitted_total",
			Help:      help("Distress submissions by destination queue."),
		}, []string{"queue"}),
		NotificationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      help("Notifications created by proximity fan-out."),
		}, []string{"type"}),
		OfflineQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "offline_queue_depth",
			Help:      help("SOS events waiting for the uplink."),
		}),
		ProviderFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_fallback_total",
			Help:      help("External data reads served from cache or mock data."),
		}, []string{"provider", "source"}),
		BoatsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "boats_tracked",
			Help:      help("Boats in the registry."),
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      help("SOS alert events handed to the event bus."),
		}, []string{"outcome"}),
		PushesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pushes_sent_total",
			Help:      help("FCM pushes sent by the alert worker."),
		}, []string{"outcome"}),
	}
}

// NewMetrics creates the collectors and registers them with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors(true)

	prometheus.MustRegister(
		m.SOSSubmitted,
		m.NotificationsCreated,
		m.OfflineQueueDepth,
		m.ProviderFallbacks,
		m.BoatsTracked,
		m.EventsPublished,
		m.PushesSent,
	)

	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newCollectors(false)
}
