package solver

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors a solve reports through when
// WithMetrics is supplied. This is purely observational: the same
// recompute/dependOn logic runs whether or not metrics are wired (spec
// §5's resource model is unaffected by this ambient concern).
type Metrics struct {
	recomputes prometheus.Counter
	widenings  prometheus.Counter
	worklist   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fixdataflow_recomputes_total",
			Help: "Number of recompute invocations across all solves sharing this registerer.",
		}),
		widenings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fixdataflow_widenings_total",
			Help: "Number of times a point's value was replaced by a client widening function.",
		}),
		worklist: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fixdataflow_worklist_depth",
			Help: "Number of points currently queued as unstable.",
		}),
	}
	// Registration failures (e.g. a second solve sharing the same
	// registerer) are not fatal to the solve itself: metrics are
	// observational, never load-bearing.
	_ = reg.Register(m.recomputes)
	_ = reg.Register(m.widenings)
	_ = reg.Register(m.worklist)
	return m
}

func (m *Metrics) recordRecompute() {
	if m == nil {
		return
	}
	m.recomputes.Inc()
}

func (m *Metrics) recordWidening() {
	if m == nil {
		return
	}
	m.widenings.Inc()
}

func (m *Metrics) setWorklistDepth(n int) {
	if m == nil {
		return
	}
	m.worklist.Set(float64(n))
}
