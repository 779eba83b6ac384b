package middleware

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/hiretrack-backend/internal/telemetry"
	"github.com/heartmarshall/hiretrack-backend/pkg/ctxutil"
)

// Tracing starts a server span per request, continuing any incoming W3C
// trace context. The span is renamed to the matched route once known.
func Tracing() Middleware {
	tracer := telemetry.Tracer("hiretrack/http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.String("http.method", r.Method),
					telemetry.String("url.path", r.URL.Path),
					telemetry.String("http.request_id", ctxutil.RequestIDFromCtx(r.Context())),
				),
			)
			defer span.End()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			req := r.WithContext(ctx)

			next.ServeHTTP(sw, req)

			if req.Pattern != "" {
				span.SetName(req.Pattern)
				span.SetAttributes(telemetry.String("http.route", req.Pattern))
			}
			span.SetAttributes(telemetry.Int("http.status_code", sw.status))
			if sw.status >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", sw.status))
			}
		})
	}
}
