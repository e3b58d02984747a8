package router

import (
	"time"

	"crm-intent-router/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records routing outcomes. A nil *Metrics records nothing.
type Metrics struct {
	routes     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	cacheHits  prometheus.Counter
	duration   prometheus.Histogram
}

// NewMetrics registers the router collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		routes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "routes_total",
			Help:      "Utterances routed to a tool, by tool.",
		}, []string{labelTool}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejections_total",
			Help:      "Utterances that ended in a routing error, by error kind.",
		}, []string{labelKind}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "Route calls answered from the memo cache.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "route_duration_seconds",
			Help:      "Time spent routing one utterance.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
		}),
	}
}

func (m *Metrics) observe(req model.ToolRequest, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
	if err != nil {
		kind := "UNKNOWN"
		if re, ok := model.AsRoutingError(err); ok {
			kind = string(re.Kind)
		}
		m.rejections.WithLabelValues(kind).Inc()
		return
	}
	m.routes.WithLabelValues(string(req.Tool)).Inc()
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}
