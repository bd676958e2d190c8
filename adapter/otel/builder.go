package otel

import (
	"context"
	"time"

	"github.com/trickstertwo/xclock"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Name identifies the emitter obtained from the EmitterProvider.
	Name = "github.com/trickstertwo/xlog-otel"
	// Version is reported alongside Name.
	Version = "0.3.0"
)

// SpanContextFunc returns the span context current for ctx.
type SpanContextFunc func(ctx context.Context) trace.SpanContext

// Builder configures an Adapter. The zero value is not usable; call NewBuilder.
type Builder struct {
	now         func() time.Time
	resource    Attributes
	nested      bool
	recordUID   bool
	spanContext SpanContextFunc
}

// NewBuilder starts a builder with the timestamp provider used for every
// record. A nil now falls back to the process-wide xclock.
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = xclock.Now
	}
	return &Builder{now: now, spanContext: trace.SpanContextFromContext}
}

// WithResource attaches a resource to every record.
func (b *Builder) WithResource(r Attributes) *Builder {
	b.resource = r
	return b
}

// WithNestedValues encodes values without a dedicated kind as structured
// maps and slices instead of their fmt rendering.
func (b *Builder) WithNestedValues() *Builder {
	b.nested = true
	return b
}

// WithSpanContext replaces the trace context accessor.
// Defaults to trace.SpanContextFromContext.
func (b *Builder) WithSpanContext(f SpanContextFunc) *Builder {
	if f != nil {
		b.spanContext = f
	}
	return b
}

// WithRecordUID stamps each record with a time-ordered UUID under RecordUIDKey.
func (b *Builder) WithRecordUID() *Builder {
	b.recordUID = true
	return b
}

// Build binds the adapter to an emitter from p. The builder may be reused.
func (b *Builder) Build(p EmitterProvider) *Adapter {
	return &Adapter{
		cfg: &config{
			now:         b.now,
			resource:    b.resource.Clone(),
			nested:      b.nested,
			recordUID:   b.recordUID,
			spanContext: b.spanContext,
		},
		emitter: p.Emitter(Name, Version),
		st:      &stats{},
	}
}
