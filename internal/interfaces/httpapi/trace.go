package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("afcon-dashboard/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spanPrefixes lists the span names worth recording. Helpers outside them reuse the caller's span.
var spanPrefixes = []string{"httpapi.Handler.", "httpapi.pageRenderer."}

// startSpan only opens child spans. Requests the tracing middleware filters out (health
// checks) carry no parent and stay untraced.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range spanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
