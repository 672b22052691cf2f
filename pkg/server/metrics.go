package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Counter
	reloadClients  prometheus.Gauge
	reloadsSent    prometheus.Counter
}

func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Total number of document renders served",
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Document render and write duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		renderBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "render_bytes_total",
			Help:      "Total bytes of rendered markup served",
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Currently connected live-reload clients",
		}),

		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "reloads_sent_total",
			Help:      "Total live-reload notifications broadcast",
		}),
	}
}
