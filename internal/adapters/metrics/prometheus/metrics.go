package prometheus

import (
	"net/http"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pixeloracle"

// Metrics records cycle, broadcast and polling counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	cyclesTotal     *prometheus.CounterVec
	cycleDuration   *prometheus.HistogramVec
	postsTotal      *prometheus.CounterVec
	eventsProcessed *prometheus.CounterVec
}

var _ ports.Metrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cyclesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cycles_total",
				Help:      "Creation cycles by outcome",
			},
			[]string{"outcome"},
		),
		cycleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cycle_duration_seconds",
				Help:      "Wall time of a creation cycle",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"outcome"},
		),
		postsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "channel_posts_total",
				Help:      "Broadcast attempts by channel and result",
			},
			[]string{"channel", "result"},
		),
		eventsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_processed_total",
				Help:      "Mentions and transfers handled, by source",
			},
			[]string{"source"},
		),
	}

	m.registry.MustRegister(
		m.cyclesTotal,
		m.cycleDuration,
		m.postsTotal,
		m.eventsProcessed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) CycleFinished(outcome domain.Outcome, elapsed time.Duration) {
	m.cyclesTotal.WithLabelValues(string(outcome)).Inc()
	m.cycleDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

func (m *Metrics) ChannelPosted(channel domain.Channel, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.postsTotal.WithLabelValues(string(channel), result).Inc()
}

func (m *Metrics) EventProcessed(source string) {
	m.eventsProcessed.WithLabelValues(source).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
