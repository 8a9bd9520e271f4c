package solver

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/fixdataflow/point"
)

// tracing bundles the per-solve tracer and session id; sessionID lets a
// client distinguish spans from several independent, concurrently
// running solveProblem calls in the same process (each owns its own
// ExecutionEnv — spec §5 only forbids sharing one environment across
// agents, not running several independently).
type tracing struct {
	tracer    trace.Tracer
	sessionID uuid.UUID
	ctx       context.Context
}

func newTracing(tracer trace.Tracer) tracing {
	return tracing{tracer: tracer, sessionID: uuid.New(), ctx: context.Background()}
}

// startRecompute opens a span for one recompute(p) call, if a tracer was
// configured; the returned end func is always safe to call.
func (t *tracing) startRecompute(p point.Point) func() {
	if t.tracer == nil {
		return func() {}
	}
	_, span := t.tracer.Start(t.ctx, "recompute",
		trace.WithAttributes(
			attribute.String("fixdataflow.session_id", t.sessionID.String()),
			attribute.Int64("fixdataflow.node_id", int64(p.Node)),
			attribute.String("fixdataflow.args_key", p.Args.Key()),
		),
	)
	return span.End
}
