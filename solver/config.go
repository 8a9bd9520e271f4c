package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Config collects the optional ambient knobs a solve may be run with.
// The zero Config disables every optional feature; none of them affect
// the value solveProblem returns (spec §5: observability must never be
// load-bearing for correctness).
type Config struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// Option configures a solve, following a functional-options idiom.
type Option func(*Config)

// WithTracer attaches an OpenTelemetry tracer; SolveProblem emits one
// span per recompute call, carrying the solve's session id, the node id
// and the argument tuple's key as attributes, when a tracer is set.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) { c.tracer = tracer }
}

// WithMetrics registers Prometheus collectors for recompute count,
// widening count, and worklist depth against reg. Safe to omit; with no
// Option set, the solver emits no metrics at all.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Config) { c.metrics = newMetrics(reg) }
}

func resolveConfig(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
