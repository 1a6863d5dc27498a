// Package tracer is a small tracing facade used by the party service.
//
// Callers depend on the Tracer and Span interfaces only. OTelTracer adapts
// OpenTelemetry for production wiring and NoopTracer is used when tracing is
// not configured and in tests.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanPartySearch,
	//       tracer.String(tracer.AttrSearchTerm, q.Term),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanPartySearch   = "party.search"
	SpanPartyOnboard  = "party.onboard"
	SpanPartyBulkLoad = "party.bulk_load"
	SpanPartyReset    = "party.reset"
)

// Attribute keys.
const (
	AttrSearchTerm      = "search.term"
	AttrSearchPage      = "search.page"
	AttrSearchPageSize  = "search.page_size"
	AttrSearchTotal     = "search.total_results"
	AttrPartyID         = "party.id"
	AttrPartyType       = "party.type"
	AttrSanctionsStatus = "party.sanctions_status"
	AttrIDGenerated     = "party.id_generated"
	AttrIDAttempts      = "party.id_attempts"
	AttrBulkSize        = "party.bulk_size"
)

// Event names.
const (
	EventPartyPublished = "party.event_published"
)
