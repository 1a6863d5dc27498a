package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"partysearch/internal/platform/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanPartySearch,
		tracer.String(tracer.AttrSearchTerm, "smith"),
		tracer.Bool(tracer.AttrIDGenerated, true),
	)

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrSearchTotal, 3))
	span.AddEvent(tracer.EventPartyPublished, tracer.String(tracer.AttrPartyID, "P-1"))
	span.End(errors.New("boom"))
}

func TestOTelTracer_WithInjectedTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanPartyOnboard,
		tracer.String(tracer.AttrPartyID, "P-1"),
		tracer.Int(tracer.AttrIDAttempts, 2),
		tracer.Duration("elapsed", 15*time.Millisecond),
	)
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int64(tracer.AttrBulkSize, 10), tracer.Attribute{Key: "ratio", Value: 0.5})
	span.AddEvent(tracer.EventPartyPublished)
	span.End(nil)
}

func TestOTelTracer_DefaultsToGlobalProvider(t *testing.T) {
	tr := tracer.NewOTel()
	_, span := tr.Start(context.Background(), tracer.SpanPartyReset)
	require.NotNil(t, span)
	span.End(errors.New("reset failed"))
}

func TestDurationAttributeIsMilliseconds(t *testing.T) {
	attr := tracer.Duration("latency", 1500*time.Millisecond)
	assert.Equal(t, int64(1500), attr.Value)
}
