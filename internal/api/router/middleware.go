package router

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/codefly-dev/base-service/internal/telemetry"
)

type middlewareOptions struct {
	skipPaths map[string]struct{}
}

// MiddlewareOption configures MetricTelemetryMiddleware.
type MiddlewareOption func(*middlewareOptions)

// WithSkipPaths excludes the given request paths from metrics.
func WithSkipPaths(paths ...string) MiddlewareOption {
	return func(o *middlewareOptions) {
		for _, p := range paths {
			o.skipPaths[p] = struct{}{}
		}
	}
}

// MetricTelemetryMiddleware records request count, latency and errors per operation.
func MetricTelemetryMiddleware(metrics *telemetry.Metrics, options ...MiddlewareOption) func(huma.Context, func(huma.Context)) {
	opts := &middlewareOptions{skipPaths: map[string]struct{}{}}
	for _, o := range options {
		o(opts)
	}

	return func(ctx huma.Context, next func(huma.Context)) {
		requestPath := ctx.URL().Path
		if _, skip := opts.skipPaths[requestPath]; skip {
			next(ctx)
			return
		}

		start := time.Now()
		next(ctx)

		// Label by route template so IDs do not explode cardinality.
		path := requestPath
		if op := ctx.Operation(); op != nil {
			path = op.Path
		}
		status := ctx.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := metric.WithAttributes(
			attribute.String("method", ctx.Method()),
			attribute.String("path", path),
			attribute.Int("status_code", status),
		)

		metrics.Requests.Add(ctx.Context(), 1, attrs)
		metrics.RequestDuration.Record(ctx.Context(), time.Since(start).Seconds(), attrs)
		if status >= http.StatusBadRequest {
			metrics.ErrorCount.Add(ctx.Context(), 1, attrs)
		}
	}
}
