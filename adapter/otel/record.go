package otel

import (
	"context"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Attributes maps attribute keys to OpenTelemetry values.
type Attributes map[string]log.Value

// Keys returns the keys in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Clone returns a shallow copy; nil stays nil.
func (a Attributes) Clone() Attributes {
	return maps.Clone(a)
}

// Record is one converted log event. A nil Resource means no resource.
type Record struct {
	SpanContext       trace.SpanContext
	Timestamp         time.Time
	ObservedTimestamp time.Time
	Severity          log.Severity
	SeverityText      string
	Body              log.Value
	Attributes        Attributes
	Resource          Attributes
}

// Emitter accepts converted records. A returned error is a rejection.
type Emitter interface {
	Emit(ctx context.Context, r Record) error
}

// EmitterProvider manufactures named, versioned emitters and owns the
// backend lifecycle.
type EmitterProvider interface {
	Emitter(name, version string) Emitter
	Shutdown(ctx context.Context) error
}
